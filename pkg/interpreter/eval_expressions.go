package interpreter

import (
	"fmt"

	"logo/interpreter-go/pkg/ast"
	"logo/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateExpression(node ast.Expression) (result runtime.Value, err error) {
	defer func() {
		if err != nil {
			err = i.attachRuntimeContext(err, node)
		}
	}()

	switch n := node.(type) {
	case *ast.NumberLiteral:
		return runtime.NumberValue{Val: n.Value}, nil
	case *ast.BooleanLiteral:
		return runtime.BooleanValue{Val: n.Value}, nil
	case *ast.WordLiteral:
		return runtime.TextValue{Val: n.Value}, nil
	case *ast.Identifier:
		val, err := i.env.Lookup(n.Name)
		if err != nil {
			return nil, translateEnvironmentError(err)
		}
		return val, nil
	case *ast.ArithmeticExpression:
		return i.evaluateArithmetic(n)
	case *ast.ComparisonExpression:
		return i.evaluateComparison(n)
	case *ast.LogicalExpression:
		return i.evaluateLogical(n)
	case *ast.QueryExpression:
		return i.evaluateQuery(n)
	default:
		return nil, fmt.Errorf("interpreter: unsupported expression %T", node)
	}
}

// evaluateNumber evaluates expr and requires a Number; context names the
// consumer in the TypeError.
func (i *Interpreter) evaluateNumber(expr ast.Expression, context string) (float32, error) {
	val, err := i.evaluateExpression(expr)
	if err != nil {
		return 0, err
	}
	num, ok := val.(runtime.NumberValue)
	if !ok {
		return 0, i.attachRuntimeContext(newTypeError(context, runtime.KindNumber, val), expr)
	}
	return num.Val, nil
}

func (i *Interpreter) evaluateBoolean(expr ast.Expression, context string) (bool, error) {
	val, err := i.evaluateExpression(expr)
	if err != nil {
		return false, err
	}
	b, ok := val.(runtime.BooleanValue)
	if !ok {
		return false, i.attachRuntimeContext(newTypeError(context, runtime.KindBoolean, val), expr)
	}
	return b.Val, nil
}

func (i *Interpreter) evaluateArithmetic(n *ast.ArithmeticExpression) (runtime.Value, error) {
	context := fmt.Sprintf("operator %s", n.Operator)
	left, err := i.evaluateNumber(n.Left, context)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluateNumber(n.Right, context)
	if err != nil {
		return nil, err
	}
	switch n.Operator {
	case ast.OpAdd:
		return runtime.NumberValue{Val: left + right}, nil
	case ast.OpSub:
		return runtime.NumberValue{Val: left - right}, nil
	case ast.OpMul:
		return runtime.NumberValue{Val: left * right}, nil
	case ast.OpDiv:
		if right == 0 {
			return nil, newDivisionByZeroError()
		}
		return runtime.NumberValue{Val: left / right}, nil
	default:
		return nil, fmt.Errorf("interpreter: unsupported arithmetic operator %q", n.Operator)
	}
}

func (i *Interpreter) evaluateComparison(n *ast.ComparisonExpression) (runtime.Value, error) {
	switch n.Operator {
	case ast.OpLT, ast.OpGT:
		context := fmt.Sprintf("operator %s", n.Operator)
		left, err := i.evaluateNumber(n.Left, context)
		if err != nil {
			return nil, err
		}
		right, err := i.evaluateNumber(n.Right, context)
		if err != nil {
			return nil, err
		}
		if n.Operator == ast.OpLT {
			return runtime.BooleanValue{Val: left < right}, nil
		}
		return runtime.BooleanValue{Val: left > right}, nil
	case ast.OpEQ, ast.OpNE:
		left, err := i.evaluateExpression(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := i.evaluateExpression(n.Right)
		if err != nil {
			return nil, err
		}
		equal, err := valuesEqual(n.Operator, left, right)
		if err != nil {
			return nil, err
		}
		if n.Operator == ast.OpNE {
			equal = !equal
		}
		return runtime.BooleanValue{Val: equal}, nil
	default:
		return nil, fmt.Errorf("interpreter: unsupported comparison operator %q", n.Operator)
	}
}

// valuesEqual compares two values of the same kind. Mixed kinds are a
// TypeError rather than simply unequal.
func valuesEqual(op ast.ComparisonOperator, left, right runtime.Value) (bool, error) {
	if left.Kind() != right.Kind() {
		return false, newRuntimeError(KindTypeError, "operator %s cannot compare %s with %s", op, runtime.Describe(left), runtime.Describe(right))
	}
	switch l := left.(type) {
	case runtime.NumberValue:
		return l.Val == right.(runtime.NumberValue).Val, nil
	case runtime.BooleanValue:
		return l.Val == right.(runtime.BooleanValue).Val, nil
	case runtime.TextValue:
		return l.Val == right.(runtime.TextValue).Val, nil
	default:
		return false, fmt.Errorf("interpreter: unsupported value %T", left)
	}
}

// evaluateLogical evaluates both operands before combining them; AND and OR
// do not short-circuit.
func (i *Interpreter) evaluateLogical(n *ast.LogicalExpression) (runtime.Value, error) {
	context := fmt.Sprintf("operator %s", n.Operator)
	left, err := i.evaluateBoolean(n.Left, context)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluateBoolean(n.Right, context)
	if err != nil {
		return nil, err
	}
	switch n.Operator {
	case ast.OpAnd:
		return runtime.BooleanValue{Val: left && right}, nil
	case ast.OpOr:
		return runtime.BooleanValue{Val: left || right}, nil
	default:
		return nil, fmt.Errorf("interpreter: unsupported logical operator %q", n.Operator)
	}
}

func (i *Interpreter) evaluateQuery(n *ast.QueryExpression) (runtime.Value, error) {
	switch n.Kind {
	case ast.QueryXCor:
		return runtime.NumberValue{Val: i.turtle.X}, nil
	case ast.QueryYCor:
		return runtime.NumberValue{Val: i.turtle.Y}, nil
	case ast.QueryHeading:
		return runtime.NumberValue{Val: i.turtle.Heading}, nil
	case ast.QueryColor:
		return runtime.NumberValue{Val: float32(i.turtle.Color)}, nil
	default:
		return nil, fmt.Errorf("interpreter: unsupported query %q", n.Kind)
	}
}
