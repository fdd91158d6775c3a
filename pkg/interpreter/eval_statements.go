package interpreter

import (
	"fmt"
	"math"

	"logo/interpreter-go/pkg/ast"
	"logo/interpreter-go/pkg/runtime"
)

func (i *Interpreter) executeProgram(program *ast.Program) error {
	for _, stmt := range program.Body {
		if err := i.executeStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) executeStatement(node ast.Statement) (err error) {
	defer func() {
		if err != nil {
			err = i.attachRuntimeContext(err, node)
		}
	}()

	switch n := node.(type) {
	case *ast.MakeStatement:
		val, err := i.evaluateExpression(n.Value)
		if err != nil {
			return err
		}
		i.env.Set(n.Name, val)
		return nil
	case *ast.AddAssignStatement:
		return i.executeAddAssign(n)
	case *ast.DrawStatement:
		return i.executeDraw(n)
	case *ast.IfStatement:
		cond, err := i.evaluateBoolean(n.Condition, "IF")
		if err != nil || !cond {
			return err
		}
		return i.executeProgram(n.Body)
	case *ast.WhileStatement:
		for {
			cond, err := i.evaluateBoolean(n.Condition, "WHILE")
			if err != nil || !cond {
				return err
			}
			if err := i.executeProgram(n.Body); err != nil {
				return err
			}
		}
	case *ast.PenStatusStatement:
		i.turtle.PenDown = n.Down
		return nil
	case *ast.PenColorStatement:
		return i.executePenColor(n)
	case *ast.PenPositionStatement:
		return i.executePenPosition(n)
	case *ast.ProcedureDefinition:
		i.env.DefineProcedure(n)
		i.log.Debugf("defined procedure %s with %d parameter(s)", n.Name, len(n.Params))
		return nil
	case *ast.ProcedureCall:
		return i.callProcedure(n)
	case ast.Expression:
		_, err := i.evaluateExpression(n)
		return err
	default:
		return fmt.Errorf("interpreter: unsupported statement %T", node)
	}
}

func (i *Interpreter) executeAddAssign(n *ast.AddAssignStatement) error {
	current, err := i.env.Lookup(n.Name)
	if err != nil {
		return translateEnvironmentError(err)
	}
	base, ok := current.(runtime.NumberValue)
	if !ok {
		return newRuntimeError(KindTypeError, "ADDASSIGN expects variable '%s' to hold a Number, found %s", n.Name, runtime.Describe(current))
	}
	delta, err := i.evaluateNumber(n.Value, "ADDASSIGN")
	if err != nil {
		return err
	}
	return i.env.Assign(n.Name, runtime.NumberValue{Val: base.Val + delta})
}

func (i *Interpreter) executeDraw(n *ast.DrawStatement) error {
	amount, err := i.evaluateNumber(n.Amount, string(n.Direction))
	if err != nil {
		return err
	}
	switch n.Direction {
	case ast.DirectionForward:
		i.advance(amount)
	case ast.DirectionBack:
		i.advance(-amount)
	case ast.DirectionLeft:
		i.setHeading(i.turtle.Heading - amount)
	case ast.DirectionRight:
		i.setHeading(i.turtle.Heading + amount)
	default:
		return fmt.Errorf("interpreter: unsupported direction %q", n.Direction)
	}
	return nil
}

func (i *Interpreter) executePenColor(n *ast.PenColorStatement) error {
	val, err := i.evaluateNumber(n.Color, "PENCOLOR")
	if err != nil {
		return err
	}
	if val != float32(math.Trunc(float64(val))) || val < 0 || val >= float32(i.paletteSize) {
		return newRuntimeError(KindColorRangeError, "PENCOLOR %s is not a palette index in [0, %d)", runtime.NumberValue{Val: val}, i.paletteSize)
	}
	i.turtle.Color = int(val)
	return nil
}

func (i *Interpreter) executePenPosition(n *ast.PenPositionStatement) error {
	val, err := i.evaluateNumber(n.Value, string(n.Kind))
	if err != nil {
		return err
	}
	switch n.Kind {
	case ast.PenSetX:
		i.moveTo(val, i.turtle.Y)
	case ast.PenSetY:
		i.moveTo(i.turtle.X, val)
	case ast.PenSetHeading:
		i.setHeading(val)
	case ast.PenTurn:
		i.setHeading(i.turtle.Heading + val)
	default:
		return fmt.Errorf("interpreter: unsupported pen position %q", n.Kind)
	}
	return nil
}
