package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueKindsAndStrings(t *testing.T) {
	tests := []struct {
		value Value
		kind  Kind
		text  string
	}{
		{value: NumberValue{Val: 7}, kind: KindNumber, text: "7"},
		{value: NumberValue{Val: -2.5}, kind: KindNumber, text: "-2.5"},
		{value: BooleanValue{Val: true}, kind: KindBoolean, text: "TRUE"},
		{value: BooleanValue{Val: false}, kind: KindBoolean, text: "FALSE"},
		{value: TextValue{Val: "red"}, kind: KindText, text: "red"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.kind, tc.value.Kind())
		assert.Equal(t, tc.text, tc.value.String())
	}
	assert.Equal(t, "Boolean TRUE", Describe(BooleanValue{Val: true}))
	assert.Equal(t, "Number", KindNumber.String())
}
