package parser

import (
	"strings"

	"logo/interpreter-go/pkg/ast"
	"logo/interpreter-go/pkg/lexer"
)

var arithmeticOperators = map[string]ast.ArithmeticOperator{
	"+": ast.OpAdd,
	"-": ast.OpSub,
	"*": ast.OpMul,
	"/": ast.OpDiv,
}

var comparisonOperators = map[string]ast.ComparisonOperator{
	"EQ": ast.OpEQ,
	"NE": ast.OpNE,
	"LT": ast.OpLT,
	"GT": ast.OpGT,
}

var logicalOperators = map[string]ast.LogicalOperator{
	"AND": ast.OpAnd,
	"OR":  ast.OpOr,
}

var queryKeywords = map[string]ast.QueryKind{
	"XCOR":    ast.QueryXCor,
	"YCOR":    ast.QueryYCor,
	"HEADING": ast.QueryHeading,
	"COLOR":   ast.QueryColor,
}

// startsExpression reports whether tok can begin an expression.
func startsExpression(tok lexer.Token) bool {
	switch tok.Kind {
	case lexer.TokenNumber:
		return true
	case lexer.TokenWord:
	default:
		return false
	}
	text := tok.Text
	if _, ok := arithmeticOperators[text]; ok {
		return true
	}
	if _, ok := comparisonOperators[text]; ok {
		return true
	}
	if _, ok := logicalOperators[text]; ok {
		return true
	}
	if _, ok := queryKeywords[text]; ok {
		return true
	}
	switch {
	case text == "TRUE", text == "FALSE":
		return true
	case strings.HasPrefix(text, `"`), strings.HasPrefix(text, ":"):
		return true
	}
	return ast.IsValidName(text)
}

func (p *parser) parseExpression() (ast.Expression, error) {
	tok, ok := p.next()
	if !ok {
		return nil, p.unexpectedEnd("expression")
	}
	switch tok.Kind {
	case lexer.TokenNumber:
		expr := ast.NewNumberLiteral(tok.Number)
		p.finish(expr, tok)
		return expr, nil
	case lexer.TokenWord:
	default:
		return nil, p.unexpected("expression", tok)
	}

	text := tok.Text
	if op, ok := arithmeticOperators[text]; ok {
		left, right, err := p.parseOperands()
		if err != nil {
			return nil, err
		}
		expr := ast.NewArithmeticExpression(op, left, right)
		p.finish(expr, tok)
		return expr, nil
	}
	if op, ok := comparisonOperators[text]; ok {
		left, right, err := p.parseOperands()
		if err != nil {
			return nil, err
		}
		expr := ast.NewComparisonExpression(op, left, right)
		p.finish(expr, tok)
		return expr, nil
	}
	if op, ok := logicalOperators[text]; ok {
		left, right, err := p.parseOperands()
		if err != nil {
			return nil, err
		}
		expr := ast.NewLogicalExpression(op, left, right)
		p.finish(expr, tok)
		return expr, nil
	}
	if kind, ok := queryKeywords[text]; ok {
		expr := ast.NewQueryExpression(kind)
		p.finish(expr, tok)
		return expr, nil
	}

	var expr ast.Expression
	switch {
	case text == "TRUE", text == "FALSE":
		expr = ast.NewBooleanLiteral(text == "TRUE")
	case strings.HasPrefix(text, `"`):
		expr = quotedWord(text[1:])
	case strings.HasPrefix(text, ":"):
		name := text[1:]
		if !ast.IsValidName(name) {
			return nil, p.unexpected("variable name", tok)
		}
		expr = ast.NewIdentifier(name)
	case ast.IsValidName(text):
		expr = ast.NewIdentifier(text)
	default:
		return nil, p.unexpected("expression", tok)
	}
	p.finish(expr, tok)
	return expr, nil
}

func (p *parser) parseOperands() (ast.Expression, ast.Expression, error) {
	left, err := p.parseExpression()
	if err != nil {
		return nil, nil, err
	}
	right, err := p.parseExpression()
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

// quotedWord maps the text after a leading '"' to a literal: numeric words
// become numbers, TRUE and FALSE become booleans, anything else stays a word.
func quotedWord(word string) ast.Expression {
	if num, ok := lexer.ParseNumber(word); ok {
		return ast.NewNumberLiteral(num)
	}
	switch word {
	case "TRUE":
		return ast.NewBooleanLiteral(true)
	case "FALSE":
		return ast.NewBooleanLiteral(false)
	}
	return ast.NewWordLiteral(word)
}
