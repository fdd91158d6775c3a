// Package runtime holds the Logo value model and the frame-stack environment
// the evaluator resolves variables and procedures against.
package runtime

import (
	"fmt"
	"strconv"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindNumber Kind = iota
	KindBoolean
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindBoolean:
		return "Boolean"
	case KindText:
		return "Text"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is implemented only by NumberValue, BooleanValue and TextValue.
type Value interface {
	Kind() Kind
	String() string
	isValue()
}

type NumberValue struct {
	Val float32
}

func (v NumberValue) Kind() Kind { return KindNumber }
func (NumberValue) isValue()     {}

func (v NumberValue) String() string {
	return strconv.FormatFloat(float64(v.Val), 'g', -1, 32)
}

type BooleanValue struct {
	Val bool
}

func (v BooleanValue) Kind() Kind { return KindBoolean }
func (BooleanValue) isValue()     {}

func (v BooleanValue) String() string {
	if v.Val {
		return "TRUE"
	}
	return "FALSE"
}

// TextValue is a raw word, produced by quoted literals such as "red.
type TextValue struct {
	Val string
}

func (v TextValue) Kind() Kind { return KindText }
func (TextValue) isValue()     {}

func (v TextValue) String() string {
	return v.Val
}

// Describe renders a value with its kind for diagnostics, e.g. Boolean TRUE.
func Describe(v Value) string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %s", v.Kind(), v.String())
}
