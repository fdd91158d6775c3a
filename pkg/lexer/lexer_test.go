package lexer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(tokens []Token) []TokenKind {
	out := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}

func TestTokenizeSplitsWordsNumbersAndBrackets(t *testing.T) {
	tokens, err := Tokenize("MAKE \"X 5\nWHILE LT :X 10 [FORWARD -2.5]")
	require.NoError(t, err)

	assert.Equal(t, []string{"MAKE", `"X`, "5", "WHILE", "LT", ":X", "10", "[", "FORWARD", "-2.5", "]"}, texts(tokens))
	assert.Equal(t, []TokenKind{
		TokenWord, TokenWord, TokenNumber,
		TokenWord, TokenWord, TokenWord, TokenNumber,
		TokenOpenBracket, TokenWord, TokenNumber, TokenCloseBracket,
	}, kinds(tokens))
	assert.Equal(t, float32(-2.5), tokens[9].Number)
}

func TestTokenizePositions(t *testing.T) {
	tokens, err := Tokenize("PENUP\n  FORWARD 10")
	require.NoError(t, err)
	require.Len(t, tokens, 3)

	assert.Equal(t, Position{Line: 1, Column: 1}, tokens[0].Pos)
	assert.Equal(t, Position{Line: 2, Column: 3}, tokens[1].Pos)
	assert.Equal(t, Position{Line: 2, Column: 11}, tokens[2].Pos)
	assert.Equal(t, Position{Line: 2, Column: 10}, tokens[1].End())
}

func TestTokenizeBracketsWithoutWhitespace(t *testing.T) {
	tokens, err := Tokenize("IF TRUE [[PENUP]]")
	require.NoError(t, err)
	assert.Equal(t, []string{"IF", "TRUE", "[", "[", "PENUP", "]", "]"}, texts(tokens))
}

func TestTokenizeSkipsLineComments(t *testing.T) {
	tokens, err := Tokenize("// header\nFORWARD 10 // trailing [ ignored\r\nPENUP")
	require.NoError(t, err)
	assert.Equal(t, []string{"FORWARD", "10", "PENUP"}, texts(tokens))
}

func TestTokenizeEmptyInput(t *testing.T) {
	tokens, err := Tokenize("  \n\t\n")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestTokenizeNumberClassification(t *testing.T) {
	tests := []struct {
		text string
		kind TokenKind
		want float32
	}{
		{text: "42", kind: TokenNumber, want: 42},
		{text: "-7", kind: TokenNumber, want: -7},
		{text: ".5", kind: TokenNumber, want: 0.5},
		{text: "-.25", kind: TokenNumber, want: -0.25},
		{text: "1e2", kind: TokenNumber, want: 100},
		{text: "-", kind: TokenWord},
		{text: `"5`, kind: TokenWord},
		{text: "inf", kind: TokenWord},
		{text: "NaN", kind: TokenWord},
	}
	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			tokens, err := Tokenize(tc.text)
			require.NoError(t, err)
			require.Len(t, tokens, 1)
			assert.Equal(t, tc.kind, tokens[0].Kind)
			if tc.kind == TokenNumber {
				assert.Equal(t, tc.want, tokens[0].Number)
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		pos    Position
	}{
		{name: "lone quote", source: `MAKE " 5`, pos: Position{Line: 1, Column: 6}},
		{name: "lone colon", source: "FORWARD :", pos: Position{Line: 1, Column: 9}},
		{name: "trailing letters", source: "PENUP\nFORWARD 12abc", pos: Position{Line: 2, Column: 9}},
		{name: "two decimal points", source: "SETX 1.2.3", pos: Position{Line: 1, Column: 6}},
		{name: "dangling exponent", source: "1e", pos: Position{Line: 1, Column: 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Tokenize(tc.source)
			require.Error(t, err)
			var lexErr *LexError
			require.True(t, errors.As(err, &lexErr), "expected LexError, got %T", err)
			assert.Equal(t, tc.pos, lexErr.Pos)
		})
	}
}
