// Package lexer splits Logo source text into word, number and bracket tokens.
package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// LexError reports a malformed token.
type LexError struct {
	Message string
	Pos     Position
}

func (e *LexError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("lexer: %s at line %d, column %d", e.Message, e.Pos.Line, e.Pos.Column)
}

// Tokenize converts source into tokens in program order. Tokens are separated
// by whitespace; '[' and ']' always stand alone. A word starting with "//"
// comments out the remainder of its line.
func Tokenize(source string) ([]Token, error) {
	var tokens []Token
	for idx, line := range strings.Split(source, "\n") {
		lineTokens, err := tokenizeLine(strings.TrimSuffix(line, "\r"), idx+1)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, lineTokens...)
	}
	return tokens, nil
}

func tokenizeLine(line string, lineNo int) ([]Token, error) {
	runes := []rune(line)
	var tokens []Token
	i := 0
	for i < len(runes) {
		r := runes[i]
		if unicode.IsSpace(r) {
			i++
			continue
		}
		pos := Position{Line: lineNo, Column: i + 1}
		switch r {
		case '[':
			tokens = append(tokens, Token{Kind: TokenOpenBracket, Text: "[", Pos: pos})
			i++
			continue
		case ']':
			tokens = append(tokens, Token{Kind: TokenCloseBracket, Text: "]", Pos: pos})
			i++
			continue
		}
		start := i
		for i < len(runes) && !unicode.IsSpace(runes[i]) && runes[i] != '[' && runes[i] != ']' {
			i++
		}
		text := string(runes[start:i])
		if strings.HasPrefix(text, "//") {
			break
		}
		tok, err := classify(text, pos)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func classify(text string, pos Position) (Token, error) {
	switch text {
	case `"`:
		return Token{}, &LexError{Message: "unterminated quoted word", Pos: pos}
	case ":":
		return Token{}, &LexError{Message: "missing variable name after ':'", Pos: pos}
	}
	if !looksNumeric(text) {
		return Token{Kind: TokenWord, Text: text, Pos: pos}, nil
	}
	val, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return Token{}, &LexError{Message: fmt.Sprintf("malformed number %q", text), Pos: pos}
	}
	return Token{Kind: TokenNumber, Text: text, Number: float32(val), Pos: pos}, nil
}

// looksNumeric reports whether text starts the way a numeric literal does: a
// digit, or '-' or '.' followed by a digit.
func looksNumeric(text string) bool {
	if text == "" {
		return false
	}
	if isDigit(text[0]) {
		return true
	}
	rest := text[1:]
	if text[0] == '-' && strings.HasPrefix(rest, ".") {
		rest = rest[1:]
	} else if text[0] != '-' && text[0] != '.' {
		return false
	}
	return rest != "" && isDigit(rest[0])
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// ParseNumber interprets text as a numeric literal using the same rules as
// the tokenizer. It backs quoted numeric words such as "5.
func ParseNumber(text string) (float32, bool) {
	if !looksNumeric(text) {
		return 0, false
	}
	val, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return 0, false
	}
	return float32(val), true
}
