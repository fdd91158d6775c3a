package parser

import (
	"fmt"

	"logo/interpreter-go/pkg/ast"
	"logo/interpreter-go/pkg/lexer"
)

// SourceLocation captures a source span for parser diagnostics.
type SourceLocation struct {
	Line      int
	Column    int
	EndLine   int
	EndColumn int
}

// ParseError reports a grammar violation: what the parser expected, what it
// found instead and where.
type ParseError struct {
	Expected string
	Found    string
	Location SourceLocation
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("parser: syntax error: expected %s, found %s", e.Expected, e.Found)
}

const endOfInput = "end of input"

func locationForToken(tok lexer.Token) SourceLocation {
	end := tok.End()
	return SourceLocation{
		Line:      tok.Pos.Line,
		Column:    tok.Pos.Column,
		EndLine:   end.Line,
		EndColumn: end.Column,
	}
}

func describeToken(tok lexer.Token) string {
	switch tok.Kind {
	case lexer.TokenNumber:
		return fmt.Sprintf("number %s", tok.Text)
	case lexer.TokenOpenBracket, lexer.TokenCloseBracket:
		return tok.Kind.String()
	}
	if ast.IsKeyword(tok.Text) {
		return fmt.Sprintf("keyword %s", tok.Text)
	}
	return fmt.Sprintf("word %q", tok.Text)
}

func spanFromTokens(start, end lexer.Token) ast.Span {
	last := end.End()
	return ast.Span{
		Start: ast.Position{Line: start.Pos.Line, Column: start.Pos.Column},
		End:   ast.Position{Line: last.Line, Column: last.Column},
	}
}
