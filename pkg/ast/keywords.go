package ast

var keywords = map[string]struct{}{
	"MAKE": {}, "ADDASSIGN": {},
	"FORWARD": {}, "BACK": {}, "LEFT": {}, "RIGHT": {},
	"PENUP": {}, "PENDOWN": {}, "PENCOLOR": {}, "SETPENCOLOR": {},
	"SETX": {}, "SETY": {}, "SETHEADING": {}, "TURN": {},
	"IF": {}, "WHILE": {}, "TO": {}, "END": {},
	"XCOR": {}, "YCOR": {}, "HEADING": {}, "COLOR": {},
	"EQ": {}, "NE": {}, "LT": {}, "GT": {}, "AND": {}, "OR": {},
	"TRUE": {}, "FALSE": {},
	"+": {}, "-": {}, "*": {}, "/": {},
}

// IsKeyword reports whether word is reserved by the language. Keywords are
// case-sensitive.
func IsKeyword(word string) bool {
	_, ok := keywords[word]
	return ok
}

// IsValidName reports whether name can label a variable, parameter or
// procedure: a letter or underscore followed by letters, digits or
// underscores, and not a keyword.
func IsValidName(name string) bool {
	if name == "" || IsKeyword(name) {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
