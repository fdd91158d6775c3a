package lexer

import "fmt"

// TokenKind identifies the lexical class of a token.
type TokenKind int

const (
	TokenWord TokenKind = iota
	TokenNumber
	TokenOpenBracket
	TokenCloseBracket
)

func (k TokenKind) String() string {
	switch k {
	case TokenWord:
		return "word"
	case TokenNumber:
		return "number"
	case TokenOpenBracket:
		return "'['"
	case TokenCloseBracket:
		return "']'"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

// Position is a 1-based line/column pair in the source text.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexeme. Number is only meaningful for TokenNumber.
type Token struct {
	Kind   TokenKind
	Text   string
	Number float32
	Pos    Position
}

// End returns the position just past the token's last character.
func (t Token) End() Position {
	return Position{Line: t.Pos.Line, Column: t.Pos.Column + len([]rune(t.Text))}
}

func (t Token) String() string {
	switch t.Kind {
	case TokenOpenBracket, TokenCloseBracket:
		return t.Kind.String()
	case TokenNumber:
		return fmt.Sprintf("number %s", t.Text)
	default:
		return fmt.Sprintf("word %q", t.Text)
	}
}
