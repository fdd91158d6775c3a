// Package parser builds Logo syntax trees from lexer tokens by recursive
// descent. Operators are prefix and fixed-arity, so expressions need no
// precedence handling.
package parser

import (
	"logo/interpreter-go/pkg/ast"
	"logo/interpreter-go/pkg/lexer"
)

// ParseSource tokenizes and parses source in one step. Lexer failures are
// returned unchanged as *lexer.LexError.
func ParseSource(source string) (*ast.Program, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// Parse builds a program from tokens. The first grammar violation is
// returned as *ParseError.
func Parse(tokens []lexer.Token) (*ast.Program, error) {
	p := &parser{tokens: tokens}
	program, err := p.parseProgram(scopeTop)
	if err != nil {
		return nil, err
	}
	return program, nil
}

// scope records which construct encloses the statements being parsed; it
// decides which terminator ends the current program.
type scope int

const (
	scopeTop scope = iota
	scopeBlock
	scopeProcedure
)

type parser struct {
	tokens      []lexer.Token
	pos         int
	inProcedure bool
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

func (p *parser) peek() (lexer.Token, bool) {
	if p.atEnd() {
		return lexer.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) next() (lexer.Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

// previous returns the most recently consumed token.
func (p *parser) previous() lexer.Token {
	if p.pos == 0 || len(p.tokens) == 0 {
		return lexer.Token{}
	}
	return p.tokens[p.pos-1]
}

func (p *parser) finish(node ast.Node, start lexer.Token) {
	ast.SetSpan(node, spanFromTokens(start, p.previous()))
}

func (p *parser) unexpected(expected string, tok lexer.Token) *ParseError {
	return &ParseError{
		Expected: expected,
		Found:    describeToken(tok),
		Location: locationForToken(tok),
	}
}

// unexpectedEnd reports input that stopped short; the location points just
// past the last token.
func (p *parser) unexpectedEnd(expected string) *ParseError {
	loc := SourceLocation{Line: 1, Column: 1, EndLine: 1, EndColumn: 1}
	if len(p.tokens) > 0 {
		end := p.tokens[len(p.tokens)-1].End()
		loc = SourceLocation{Line: end.Line, Column: end.Column, EndLine: end.Line, EndColumn: end.Column}
	}
	return &ParseError{Expected: expected, Found: endOfInput, Location: loc}
}

func isWord(tok lexer.Token, text string) bool {
	return tok.Kind == lexer.TokenWord && tok.Text == text
}
