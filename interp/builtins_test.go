/*
File    : elton/interp/builtins_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuiltins_NumericAndArray(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{"abs negative", `print(abs(-5));`, "5\n"},
		{"max of varargs", `print(max(3, 7, 1));`, "7\n"},
		{"min of array", `print(min([3, 7, 1]));`, "1\n"},
		{"round to 2 decimals", `print(round(3.14159, 2));`, "3.14\n"},
		{"length of array", `print(length([1, 2, 3]));`, "3\n"},
		{"length of string", `print(length("hello"));`, "5\n"},
		{"pop returns last element", `var a = [1, 2, 3]; print(pop(a)); print(a);`, "3\n[1, 2]\n"},
		{"slice half-open", `print(slice([1, 2, 3, 4, 5], 1, 3));`, "[2, 3]\n"},
		{"reverse", `print(reverse([1, 2, 3]));`, "[3, 2, 1]\n"},
		{"sort ascending", `print(sort([3, 1, 2]));`, "[1, 2, 3]\n"},
		{"sort descending", `print(sort([3, 1, 2], true));`, "[3, 2, 1]\n"},
		{"unique preserves order", `print(unique([1, 2, 1, 3, 2]));`, "[1, 2, 3]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, runProgram(t, tt.src))
		})
	}
}

func TestBuiltins_StringFunctions(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{"substring", `print(substring("hello world", 0, 5));`, "hello\n"},
		{"uppercase", `print(uppercase("shout"));`, "SHOUT\n"},
		{"lowercase", `print(lowercase("QUIET"));`, "quiet\n"},
		{"trim", `print(trim("  padded  "));`, "padded\n"},
		{"split default delimiter", `print(split("a b c"));`, "[a, b, c]\n"},
		{"split custom delimiter", `print(split("a,b,c", ","));`, "[a, b, c]\n"},
		{"join default separator", `print(join(["a", "b", "c"]));`, "abc\n"},
		{"join custom separator", `print(join(["a", "b", "c"], "-"));`, "a-b-c\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, runProgram(t, tt.src))
		})
	}
}

func TestBuiltins_FunctionalHigherOrder(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{
			"map doubles each element",
			`func dbl(x: int) int { return x * 2 } print(map("dbl", [1, 2, 3]));`,
			"[2, 4, 6]\n",
		},
		{
			"filter keeps evens",
			`func isEven(x: int) bool { return x % 2 == 0 } print(filter("isEven", [1, 2, 3, 4, 5, 6]));`,
			"[2, 4, 6]\n",
		},
		{
			"reduce sums with initial value",
			`func add(acc: int, x: int) int { return acc + x } print(reduce("add", [1, 2, 3, 4], 0));`,
			"10\n",
		},
		{
			"listcomp behaves like map",
			`func square(x: int) int { return x * x } print(listcomp("square", [1, 2, 3]));`,
			"[1, 4, 9]\n",
		},
		{
			"map accepts a lambda value directly",
			`var triple = lambda(x: int) { return x * 3 } print(map(triple, [1, 2, 3]));`,
			"[3, 6, 9]\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, runProgram(t, tt.src))
		})
	}
}

func TestBuiltins_PopFromEmptyArrayIsIndexError(t *testing.T) {
	program := `var a = []; pop(a);`
	_, err := parseAndRun(t, program)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Index Error")
}
