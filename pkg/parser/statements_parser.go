package parser

import (
	"strings"

	"logo/interpreter-go/pkg/ast"
	"logo/interpreter-go/pkg/lexer"
)

var directionKeywords = map[string]ast.Direction{
	"FORWARD": ast.DirectionForward,
	"BACK":    ast.DirectionBack,
	"LEFT":    ast.DirectionLeft,
	"RIGHT":   ast.DirectionRight,
}

var penPositionKeywords = map[string]ast.PenPositionKind{
	"SETX":       ast.PenSetX,
	"SETY":       ast.PenSetY,
	"SETHEADING": ast.PenSetHeading,
	"TURN":       ast.PenTurn,
}

// parseProgram consumes statements until the terminator of the given scope.
// The terminator itself is left for the caller.
func (p *parser) parseProgram(sc scope) (*ast.Program, error) {
	start, _ := p.peek()
	body := []ast.Statement{}
	for {
		tok, ok := p.peek()
		if !ok {
			switch sc {
			case scopeBlock:
				return nil, p.unexpectedEnd("']'")
			case scopeProcedure:
				return nil, p.unexpectedEnd("END")
			}
			break
		}
		if tok.Kind == lexer.TokenCloseBracket {
			if sc == scopeBlock {
				break
			}
			return nil, p.unexpected("statement", tok)
		}
		if isWord(tok, "END") {
			if sc == scopeProcedure {
				break
			}
			return nil, p.unexpected("statement", tok)
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	program := ast.NewProgram(body)
	if len(body) > 0 {
		p.finish(program, start)
	}
	return program, nil
}

func (p *parser) parseStatement() (ast.Statement, error) {
	tok, _ := p.peek()
	if tok.Kind != lexer.TokenWord {
		if tok.Kind == lexer.TokenNumber {
			return p.parseExpression()
		}
		return nil, p.unexpected("statement", tok)
	}

	if dir, ok := directionKeywords[tok.Text]; ok {
		p.next()
		amount, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt := ast.NewDrawStatement(dir, amount)
		p.finish(stmt, tok)
		return stmt, nil
	}
	if kind, ok := penPositionKeywords[tok.Text]; ok {
		p.next()
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt := ast.NewPenPositionStatement(kind, value)
		p.finish(stmt, tok)
		return stmt, nil
	}

	switch tok.Text {
	case "MAKE", "ADDASSIGN":
		return p.parseAssignment()
	case "PENUP", "PENDOWN":
		p.next()
		stmt := ast.NewPenStatusStatement(tok.Text == "PENDOWN")
		p.finish(stmt, tok)
		return stmt, nil
	case "PENCOLOR", "SETPENCOLOR":
		p.next()
		color, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		stmt := ast.NewPenColorStatement(color)
		p.finish(stmt, tok)
		return stmt, nil
	case "IF", "WHILE":
		return p.parseConditional()
	case "TO":
		return p.parseProcedureDefinition()
	}

	if ast.IsKeyword(tok.Text) || strings.HasPrefix(tok.Text, `"`) || strings.HasPrefix(tok.Text, ":") {
		return p.parseExpression()
	}
	if ast.IsValidName(tok.Text) {
		return p.parseProcedureCall()
	}
	return nil, p.unexpected("statement", tok)
}

func (p *parser) parseAssignment() (ast.Statement, error) {
	keyword, _ := p.next()
	name, err := p.parseVariableName()
	if err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	var stmt ast.Statement
	if keyword.Text == "MAKE" {
		stmt = ast.NewMakeStatement(name, value)
	} else {
		stmt = ast.NewAddAssignStatement(name, value)
	}
	p.finish(stmt, keyword)
	return stmt, nil
}

// parseVariableName accepts "NAME or a bare NAME as an assignment target.
func (p *parser) parseVariableName() (string, error) {
	tok, ok := p.next()
	if !ok {
		return "", p.unexpectedEnd("variable name")
	}
	if tok.Kind != lexer.TokenWord {
		return "", p.unexpected("variable name", tok)
	}
	name := strings.TrimPrefix(tok.Text, `"`)
	if !ast.IsValidName(name) {
		return "", p.unexpected("variable name", tok)
	}
	return name, nil
}

func (p *parser) parseConditional() (ast.Statement, error) {
	keyword, _ := p.next()
	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var stmt ast.Statement
	if keyword.Text == "IF" {
		stmt = ast.NewIfStatement(condition, body)
	} else {
		stmt = ast.NewWhileStatement(condition, body)
	}
	p.finish(stmt, keyword)
	return stmt, nil
}

// parseBlock parses a bracketed program, consuming both brackets.
func (p *parser) parseBlock() (*ast.Program, error) {
	open, ok := p.next()
	if !ok {
		return nil, p.unexpectedEnd("'['")
	}
	if open.Kind != lexer.TokenOpenBracket {
		return nil, p.unexpected("'['", open)
	}
	body, err := p.parseProgram(scopeBlock)
	if err != nil {
		return nil, err
	}
	p.next()
	p.finish(body, open)
	return body, nil
}

func (p *parser) parseProcedureDefinition() (ast.Statement, error) {
	keyword, _ := p.next()
	if p.inProcedure {
		return nil, p.unexpected("END", keyword)
	}
	nameTok, ok := p.next()
	if !ok {
		return nil, p.unexpectedEnd("procedure name")
	}
	if nameTok.Kind != lexer.TokenWord || !ast.IsValidName(nameTok.Text) {
		return nil, p.unexpected("procedure name", nameTok)
	}

	params := []string{}
	seen := make(map[string]struct{})
	for {
		tok, ok := p.peek()
		if !ok || tok.Pos.Line != keyword.Pos.Line || !isParameterToken(tok) {
			break
		}
		p.next()
		name := strings.TrimLeft(tok.Text, `":`)
		if !ast.IsValidName(name) {
			return nil, p.unexpected("parameter name", tok)
		}
		if _, dup := seen[name]; dup {
			return nil, p.unexpected("distinct parameter name", tok)
		}
		seen[name] = struct{}{}
		params = append(params, name)
	}

	p.inProcedure = true
	body, err := p.parseProgram(scopeProcedure)
	p.inProcedure = false
	if err != nil {
		return nil, err
	}
	p.next()

	stmt := ast.NewProcedureDefinition(nameTok.Text, params, body)
	p.finish(stmt, keyword)
	return stmt, nil
}

// isParameterToken reports whether tok may continue a TO parameter list.
// Quoted and colon forms always do; a bare word does unless it is a keyword.
func isParameterToken(tok lexer.Token) bool {
	if tok.Kind != lexer.TokenWord {
		return false
	}
	if strings.HasPrefix(tok.Text, `"`) || strings.HasPrefix(tok.Text, ":") {
		return true
	}
	return !ast.IsKeyword(tok.Text)
}

// parseProcedureCall parses NAME followed by every expression that starts on
// the same line. The argument count is checked when the call runs.
func (p *parser) parseProcedureCall() (ast.Statement, error) {
	nameTok, _ := p.next()
	args := []ast.Expression{}
	for {
		tok, ok := p.peek()
		if !ok || tok.Pos.Line != nameTok.Pos.Line || !startsExpression(tok) {
			break
		}
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	stmt := ast.NewProcedureCall(nameTok.Text, args)
	p.finish(stmt, nameTok)
	return stmt, nil
}
