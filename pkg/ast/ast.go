// Package ast defines the syntax tree produced by the Logo parser.
package ast

type NodeType string

const (
	NodeProgram              NodeType = "Program"
	NodeNumberLiteral        NodeType = "NumberLiteral"
	NodeBooleanLiteral       NodeType = "BooleanLiteral"
	NodeWordLiteral          NodeType = "WordLiteral"
	NodeIdentifier           NodeType = "Identifier"
	NodeArithmeticExpression NodeType = "ArithmeticExpression"
	NodeComparisonExpression NodeType = "ComparisonExpression"
	NodeLogicalExpression    NodeType = "LogicalExpression"
	NodeQueryExpression      NodeType = "QueryExpression"
	NodeMakeStatement        NodeType = "MakeStatement"
	NodeAddAssignStatement   NodeType = "AddAssignStatement"
	NodeDrawStatement        NodeType = "DrawStatement"
	NodeIfStatement          NodeType = "IfStatement"
	NodeWhileStatement       NodeType = "WhileStatement"
	NodePenStatusStatement   NodeType = "PenStatusStatement"
	NodePenColorStatement    NodeType = "PenColorStatement"
	NodePenPositionStatement NodeType = "PenPositionStatement"
	NodeProcedureDefinition  NodeType = "ProcedureDefinition"
	NodeProcedureCall        NodeType = "ProcedureCall"
)

type Node interface {
	NodeType() NodeType
	Span() Span
	isNode()
}

type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

type nodeImpl struct {
	Type NodeType `json:"type"`
	span Span
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (n nodeImpl) Span() Span         { return n.span }
func (nodeImpl) isNode()              {}
func (n *nodeImpl) setSpan(span Span) { n.span = span }

// Marker interfaces. Every expression may also stand as a statement; its
// value is discarded.

type Expression interface {
	Node
	expressionNode()
	statementNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

// Program is an ordered body of statements. IF, WHILE and TO bodies are
// programs in their own right.
type Program struct {
	nodeImpl

	Body []Statement `json:"body"`
}

func NewProgram(body []Statement) *Program {
	return &Program{nodeImpl: newNodeImpl(NodeProgram), Body: body}
}

// Literals

type NumberLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Value float32 `json:"value"`
}

func NewNumberLiteral(value float32) *NumberLiteral {
	return &NumberLiteral{nodeImpl: newNodeImpl(NodeNumberLiteral), Value: value}
}

type BooleanLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Value bool `json:"value"`
}

func NewBooleanLiteral(value bool) *BooleanLiteral {
	return &BooleanLiteral{nodeImpl: newNodeImpl(NodeBooleanLiteral), Value: value}
}

// WordLiteral is a quoted word used as a value, e.g. "red.
type WordLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Value string `json:"value"`
}

func NewWordLiteral(value string) *WordLiteral {
	return &WordLiteral{nodeImpl: newNodeImpl(NodeWordLiteral), Value: value}
}

// Identifier references a variable, resolved when evaluated.
type Identifier struct {
	nodeImpl
	expressionMarker
	statementMarker

	Name string `json:"name"`
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

// Operators

type ArithmeticOperator string

const (
	OpAdd ArithmeticOperator = "+"
	OpSub ArithmeticOperator = "-"
	OpMul ArithmeticOperator = "*"
	OpDiv ArithmeticOperator = "/"
)

type ArithmeticExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Operator ArithmeticOperator `json:"operator"`
	Left     Expression         `json:"left"`
	Right    Expression         `json:"right"`
}

func NewArithmeticExpression(op ArithmeticOperator, left, right Expression) *ArithmeticExpression {
	return &ArithmeticExpression{nodeImpl: newNodeImpl(NodeArithmeticExpression), Operator: op, Left: left, Right: right}
}

type ComparisonOperator string

const (
	OpEQ ComparisonOperator = "EQ"
	OpNE ComparisonOperator = "NE"
	OpLT ComparisonOperator = "LT"
	OpGT ComparisonOperator = "GT"
)

type ComparisonExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Operator ComparisonOperator `json:"operator"`
	Left     Expression         `json:"left"`
	Right    Expression         `json:"right"`
}

func NewComparisonExpression(op ComparisonOperator, left, right Expression) *ComparisonExpression {
	return &ComparisonExpression{nodeImpl: newNodeImpl(NodeComparisonExpression), Operator: op, Left: left, Right: right}
}

type LogicalOperator string

const (
	OpAnd LogicalOperator = "AND"
	OpOr  LogicalOperator = "OR"
)

type LogicalExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Operator LogicalOperator `json:"operator"`
	Left     Expression      `json:"left"`
	Right    Expression      `json:"right"`
}

func NewLogicalExpression(op LogicalOperator, left, right Expression) *LogicalExpression {
	return &LogicalExpression{nodeImpl: newNodeImpl(NodeLogicalExpression), Operator: op, Left: left, Right: right}
}

type QueryKind string

const (
	QueryXCor    QueryKind = "XCOR"
	QueryYCor    QueryKind = "YCOR"
	QueryHeading QueryKind = "HEADING"
	QueryColor   QueryKind = "COLOR"
)

type QueryExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Kind QueryKind `json:"kind"`
}

func NewQueryExpression(kind QueryKind) *QueryExpression {
	return &QueryExpression{nodeImpl: newNodeImpl(NodeQueryExpression), Kind: kind}
}

// Statements

type MakeStatement struct {
	nodeImpl
	statementMarker

	Name  string     `json:"name"`
	Value Expression `json:"value"`
}

func NewMakeStatement(name string, value Expression) *MakeStatement {
	return &MakeStatement{nodeImpl: newNodeImpl(NodeMakeStatement), Name: name, Value: value}
}

type AddAssignStatement struct {
	nodeImpl
	statementMarker

	Name  string     `json:"name"`
	Value Expression `json:"value"`
}

func NewAddAssignStatement(name string, value Expression) *AddAssignStatement {
	return &AddAssignStatement{nodeImpl: newNodeImpl(NodeAddAssignStatement), Name: name, Value: value}
}

type Direction string

const (
	DirectionForward Direction = "FORWARD"
	DirectionBack    Direction = "BACK"
	DirectionLeft    Direction = "LEFT"
	DirectionRight   Direction = "RIGHT"
)

type DrawStatement struct {
	nodeImpl
	statementMarker

	Direction Direction  `json:"direction"`
	Amount    Expression `json:"amount"`
}

func NewDrawStatement(direction Direction, amount Expression) *DrawStatement {
	return &DrawStatement{nodeImpl: newNodeImpl(NodeDrawStatement), Direction: direction, Amount: amount}
}

type IfStatement struct {
	nodeImpl
	statementMarker

	Condition Expression `json:"condition"`
	Body      *Program   `json:"body"`
}

func NewIfStatement(condition Expression, body *Program) *IfStatement {
	return &IfStatement{nodeImpl: newNodeImpl(NodeIfStatement), Condition: condition, Body: body}
}

type WhileStatement struct {
	nodeImpl
	statementMarker

	Condition Expression `json:"condition"`
	Body      *Program   `json:"body"`
}

func NewWhileStatement(condition Expression, body *Program) *WhileStatement {
	return &WhileStatement{nodeImpl: newNodeImpl(NodeWhileStatement), Condition: condition, Body: body}
}

type PenStatusStatement struct {
	nodeImpl
	statementMarker

	Down bool `json:"down"`
}

func NewPenStatusStatement(down bool) *PenStatusStatement {
	return &PenStatusStatement{nodeImpl: newNodeImpl(NodePenStatusStatement), Down: down}
}

type PenColorStatement struct {
	nodeImpl
	statementMarker

	Color Expression `json:"color"`
}

func NewPenColorStatement(color Expression) *PenColorStatement {
	return &PenColorStatement{nodeImpl: newNodeImpl(NodePenColorStatement), Color: color}
}

type PenPositionKind string

const (
	PenSetX       PenPositionKind = "SETX"
	PenSetY       PenPositionKind = "SETY"
	PenSetHeading PenPositionKind = "SETHEADING"
	PenTurn       PenPositionKind = "TURN"
)

type PenPositionStatement struct {
	nodeImpl
	statementMarker

	Kind  PenPositionKind `json:"kind"`
	Value Expression      `json:"value"`
}

func NewPenPositionStatement(kind PenPositionKind, value Expression) *PenPositionStatement {
	return &PenPositionStatement{nodeImpl: newNodeImpl(NodePenPositionStatement), Kind: kind, Value: value}
}

type ProcedureDefinition struct {
	nodeImpl
	statementMarker

	Name   string   `json:"name"`
	Params []string `json:"params"`
	Body   *Program `json:"body"`
}

func NewProcedureDefinition(name string, params []string, body *Program) *ProcedureDefinition {
	return &ProcedureDefinition{nodeImpl: newNodeImpl(NodeProcedureDefinition), Name: name, Params: params, Body: body}
}

type ProcedureCall struct {
	nodeImpl
	statementMarker

	Name string       `json:"name"`
	Args []Expression `json:"args"`
}

func NewProcedureCall(name string, args []Expression) *ProcedureCall {
	return &ProcedureCall{nodeImpl: newNodeImpl(NodeProcedureCall), Name: name, Args: args}
}
