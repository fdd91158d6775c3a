package ast

// Inspect traverses node depth-first in source order, calling fn for each
// node. Children are skipped when fn returns false.
func Inspect(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	switch n := node.(type) {
	case *Program:
		for _, stmt := range n.Body {
			Inspect(stmt, fn)
		}
	case *ArithmeticExpression:
		Inspect(n.Left, fn)
		Inspect(n.Right, fn)
	case *ComparisonExpression:
		Inspect(n.Left, fn)
		Inspect(n.Right, fn)
	case *LogicalExpression:
		Inspect(n.Left, fn)
		Inspect(n.Right, fn)
	case *MakeStatement:
		Inspect(n.Value, fn)
	case *AddAssignStatement:
		Inspect(n.Value, fn)
	case *DrawStatement:
		Inspect(n.Amount, fn)
	case *IfStatement:
		Inspect(n.Condition, fn)
		Inspect(n.Body, fn)
	case *WhileStatement:
		Inspect(n.Condition, fn)
		Inspect(n.Body, fn)
	case *PenColorStatement:
		Inspect(n.Color, fn)
	case *PenPositionStatement:
		Inspect(n.Value, fn)
	case *ProcedureDefinition:
		Inspect(n.Body, fn)
	case *ProcedureCall:
		for _, arg := range n.Args {
			Inspect(arg, fn)
		}
	}
}
