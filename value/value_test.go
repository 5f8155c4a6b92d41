/*
File    : elton/value/value_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber_DisplayDropsTrailingZero(t *testing.T) {
	assert.Equal(t, "7", Number(7).Display())
	assert.Equal(t, "7", Number(7.0).Display())
	assert.Equal(t, "3.5", Number(3.5).Display())
	assert.Equal(t, "-2", Number(-2).Display())
}

func TestArray_Display(t *testing.T) {
	a := NewArray([]Value{Number(1), Number(2), String("x")})
	assert.Equal(t, "[1, 2, x]", a.Display())
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"zero is falsy", Number(0), false},
		{"nonzero is truthy", Number(1), true},
		{"empty string is falsy", String(""), false},
		{"nonempty string is truthy", String("a"), true},
		{"empty array is falsy", NewArray(nil), false},
		{"nonempty array is truthy", NewArray([]Value{Number(1)}), true},
		{"unit is falsy", Unit{}, false},
		{"false is falsy", Boolean(false), false},
		{"true is truthy", Boolean(true), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truthy(tt.v))
		})
	}
}

func TestEqual_Arrays(t *testing.T) {
	a := NewArray([]Value{Number(1), Number(2)})
	b := NewArray([]Value{Number(1), Number(2)})
	c := NewArray([]Value{Number(1), Number(3)})
	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
}

func TestEqual_DifferentTypesNeverEqual(t *testing.T) {
	assert.False(t, Equal(Number(1), String("1")))
}

func TestNumber_IsIntegerAndInt(t *testing.T) {
	assert.True(t, Number(4).IsInteger())
	assert.False(t, Number(4.5).IsInteger())
	assert.Equal(t, 4, Number(4).Int())
}
