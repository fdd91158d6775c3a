package ast

// Literal and reference helpers.

func Num(value float32) *NumberLiteral {
	return NewNumberLiteral(value)
}

func Bool(value bool) *BooleanLiteral {
	return NewBooleanLiteral(value)
}

func Word(value string) *WordLiteral {
	return NewWordLiteral(value)
}

func ID(name string) *Identifier {
	return NewIdentifier(name)
}

// Operator helpers.

func Arith(op ArithmeticOperator, left, right Expression) *ArithmeticExpression {
	return NewArithmeticExpression(op, left, right)
}

func Cmp(op ComparisonOperator, left, right Expression) *ComparisonExpression {
	return NewComparisonExpression(op, left, right)
}

func Logic(op LogicalOperator, left, right Expression) *LogicalExpression {
	return NewLogicalExpression(op, left, right)
}

func Query(kind QueryKind) *QueryExpression {
	return NewQueryExpression(kind)
}

// Statement helpers.

func Prog(body ...Statement) *Program {
	if body == nil {
		body = []Statement{}
	}
	return NewProgram(body)
}

func Make(name string, value Expression) *MakeStatement {
	return NewMakeStatement(name, value)
}

func AddAssign(name string, value Expression) *AddAssignStatement {
	return NewAddAssignStatement(name, value)
}

func Draw(direction Direction, amount Expression) *DrawStatement {
	return NewDrawStatement(direction, amount)
}

func If(condition Expression, body ...Statement) *IfStatement {
	return NewIfStatement(condition, Prog(body...))
}

func While(condition Expression, body ...Statement) *WhileStatement {
	return NewWhileStatement(condition, Prog(body...))
}

func PenUp() *PenStatusStatement {
	return NewPenStatusStatement(false)
}

func PenDown() *PenStatusStatement {
	return NewPenStatusStatement(true)
}

func PenColor(color Expression) *PenColorStatement {
	return NewPenColorStatement(color)
}

func PenPos(kind PenPositionKind, value Expression) *PenPositionStatement {
	return NewPenPositionStatement(kind, value)
}

func Proc(name string, params []string, body ...Statement) *ProcedureDefinition {
	if params == nil {
		params = []string{}
	}
	return NewProcedureDefinition(name, params, Prog(body...))
}

func Call(name string, args ...Expression) *ProcedureCall {
	if args == nil {
		args = []Expression{}
	}
	return NewProcedureCall(name, args)
}
