/*
File    : elton/interp/interp_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// End-to-end scenarios from spec.md §8, run through the real pipeline
// (parser.ParseProgram → interp.Interpreter) rather than hand-built ASTs,
// the way the teacher's main/main_test.go drives whole programs through
// its own pipeline.
package interp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elton/parser"
)

func runProgram(t *testing.T, src string) string {
	t.Helper()
	program, err := parser.ParseProgram(src)
	require.NoError(t, err)

	var buf bytes.Buffer
	it := New()
	it.Writer = &buf
	require.NoError(t, it.Run(program))
	return buf.String()
}

// parseAndRun is runProgram's counterpart for tests that expect a runtime
// error: it returns whatever output was written before the failure plus
// the error itself, instead of asserting success.
func parseAndRun(t *testing.T, src string) (string, error) {
	t.Helper()
	program, err := parser.ParseProgram(src)
	require.NoError(t, err)

	var buf bytes.Buffer
	it := New()
	it.Writer = &buf
	err = it.Run(program)
	return buf.String(), err
}

func TestEndToEndScenarios(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{
			name:     "arithmetic and precedence",
			src:      `print(1 + 2 * 3);`,
			expected: "7\n",
		},
		{
			name:     "variables and strings",
			src:      `var name: string = "world"; print("hello, " + name + "!");`,
			expected: "hello, world!\n",
		},
		{
			name:     "function and recursion",
			src:      `func fact(n: int) int { if (n <= 1) { return 1 } else { return n * fact(n - 1) } } print(fact(5));`,
			expected: "120\n",
		},
		{
			name:     "for over inclusive range",
			src:      `var s: int = 0; for i in 1..4 { s = s + i } print(s);`,
			expected: "10\n",
		},
		{
			name:     "higher-order functional builtin",
			src:      `func dbl(x: int) int { return x * 2 } print(map("dbl", [1,2,3]));`,
			expected: "[2, 4, 6]\n",
		},
		{
			name:     "try/catch",
			src:      `try { throw "boom" } catch e { print("caught: " + e) }`,
			expected: "caught: boom\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, runProgram(t, tt.src))
		})
	}
}

func TestDeterminism(t *testing.T) {
	src := `func fib(n: int) int { if (n <= 1) { return n } else { return fib(n-1) + fib(n-2) } } print(fib(10));`
	first := runProgram(t, src)
	second := runProgram(t, src)
	assert.Equal(t, first, second)
}

func TestInclusiveRangeIterationCount(t *testing.T) {
	src := `var count: int = 0; for i in 3..7 { count = count + 1 } print(count);`
	assert.Equal(t, "5\n", runProgram(t, src))
}

func TestInclusiveRangeSingleElement(t *testing.T) {
	src := `var count: int = 0; for i in 5..5 { count = count + 1 } print(count);`
	assert.Equal(t, "1\n", runProgram(t, src))
}

func TestNegativeIndexEqualsLengthPlusIndex(t *testing.T) {
	src := `var a = [10, 20, 30, 40]; print(a[-1]); print(a[-1] == a[3]);`
	assert.Equal(t, "40\ntrue\n", runProgram(t, src))
}

func TestShortCircuitAndOr(t *testing.T) {
	// The right operand must never execute: calling an undefined function
	// would raise a NameError if it were evaluated.
	src := `print(false && undefinedFn()); print(true || undefinedFn());`
	assert.Equal(t, "false\ntrue\n", runProgram(t, src))
}

func TestArraysAreReferenceTypes(t *testing.T) {
	src := `var a = [1, 2]; func grow(arr: array) int { return push(arr, 3) } grow(a); print(a);`
	assert.Equal(t, "[1, 2, 3]\n", runProgram(t, src))
}

func TestDivisionAndModuloByZero(t *testing.T) {
	program, err := parser.ParseProgram(`print(1 / 0);`)
	require.NoError(t, err)
	it := New()
	var buf bytes.Buffer
	it.Writer = &buf
	err = it.Run(program)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Zero Division")

	program, err = parser.ParseProgram(`print(1 % 0);`)
	require.NoError(t, err)
	err = it.Run(program)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Zero Division")
}

func TestUndefinedVariableIsNameError(t *testing.T) {
	program, err := parser.ParseProgram(`print(doesNotExist);`)
	require.NoError(t, err)
	it := New()
	var buf bytes.Buffer
	it.Writer = &buf
	err = it.Run(program)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Name Error")
}

func TestWrongArityIsTypeError(t *testing.T) {
	program, err := parser.ParseProgram(`func add(a: int, b: int) int { return a + b } print(add(1));`)
	require.NoError(t, err)
	it := New()
	var buf bytes.Buffer
	it.Writer = &buf
	err = it.Run(program)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Type Error")
}

func TestArrayIndexOutOfRangeIsIndexError(t *testing.T) {
	program, err := parser.ParseProgram(`var a = [1, 2]; print(a[5]);`)
	require.NoError(t, err)
	it := New()
	var buf bytes.Buffer
	it.Writer = &buf
	err = it.Run(program)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Index Error")
}
