/*
File    : elton/interp/interp_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Binary/unary operators and array literal/access/slice, per spec.md
// §4.3's "Operator semantics" and "Arrays" rules.
package interp

import (
	"math"

	"elton/ast"
	"elton/errors"
	"elton/value"
)

func (it *Interpreter) evalArrayLiteral(n *ast.ArrayLiteral) (value.Value, error) {
	elements := make([]value.Value, len(n.Elements))
	for i, el := range n.Elements {
		v, err := it.eval(el)
		if err != nil {
			return nil, err
		}
		elements[i] = v
	}
	return value.NewArray(elements), nil
}

// resolveIndex normalizes a possibly-negative index against length,
// erroring on a non-integer or still out-of-range result, per spec.md §3's
// "negative indices are normalized by adding the array length" invariant.
func resolveIndex(line, col int, idx value.Number, length int) (int, error) {
	if !idx.IsInteger() {
		return 0, errors.Type(line, col, "array index must be an integer, got %v", float64(idx))
	}
	i := idx.Int()
	if i < 0 {
		i += length
	}
	if i < 0 || i >= length {
		return 0, errors.Index(line, col, "array index out of range")
	}
	return i, nil
}

func (it *Interpreter) evalArrayAccess(n *ast.ArrayAccess) (value.Value, error) {
	line, col := n.Pos()
	arr, err := it.resolveArray(n.ArrayName, line, col)
	if err != nil {
		return nil, err
	}
	idxVal, err := it.eval(n.Index)
	if err != nil {
		return nil, err
	}
	idxNum, ok := idxVal.(value.Number)
	if !ok {
		return nil, errors.Type(line, col, "array index must be a number, got %s", idxVal.Type())
	}
	i, err := resolveIndex(line, col, idxNum, len(arr.Elements))
	if err != nil {
		return nil, err
	}
	return arr.Elements[i], nil
}

func (it *Interpreter) evalArraySlice(n *ast.ArraySlice) (value.Value, error) {
	line, col := n.Pos()
	arr, err := it.resolveArray(n.ArrayName, line, col)
	if err != nil {
		return nil, err
	}
	length := len(arr.Elements)

	start := 0
	if n.Start != nil {
		start, err = it.evalBoundIndex(n.Start, length, line, col)
		if err != nil {
			return nil, err
		}
	}
	end := length
	if n.End != nil {
		end, err = it.evalBoundIndex(n.End, length, line, col)
		if err != nil {
			return nil, err
		}
	}
	if start < 0 {
		start = 0
	}
	if end > length {
		end = length
	}
	if end < 0 {
		end = 0
	}
	if start > end {
		start = end
	}
	sliced := make([]value.Value, end-start)
	copy(sliced, arr.Elements[start:end])
	return value.NewArray(sliced), nil
}

// evalBoundIndex evaluates a slice bound, applying the same negative-wrap
// rule as array access; evalArraySlice then clamps the result into
// [0, length] rather than erroring on overshoot —
// spec.md §4.3 gives slice bounds a "half-open, clamped" latitude access
// does not get.
func (it *Interpreter) evalBoundIndex(node ast.Node, length, line, col int) (int, error) {
	v, err := it.eval(node)
	if err != nil {
		return 0, err
	}
	n, ok := v.(value.Number)
	if !ok {
		return 0, errors.Type(line, col, "slice bound must be a number, got %s", v.Type())
	}
	if !n.IsInteger() {
		return 0, errors.Type(line, col, "slice bound must be an integer, got %v", float64(n))
	}
	i := n.Int()
	if i < 0 {
		i += length
	}
	return i, nil
}

func (it *Interpreter) resolveArray(name string, line, col int) (*value.Array, error) {
	v, ok := it.Env.Get(name)
	if !ok {
		return nil, errors.Name(line, col, "undefined variable %q", name)
	}
	arr, ok := v.(*value.Array)
	if !ok {
		return nil, errors.Type(line, col, "%q is not an array (got %s)", name, v.Type())
	}
	return arr, nil
}

func (it *Interpreter) evalUnaryOp(n *ast.UnaryOp) (value.Value, error) {
	line, col := n.Pos()
	v, err := it.eval(n.Operand)
	if err != nil {
		return nil, err
	}
	num, ok := v.(value.Number)
	if !ok {
		return nil, errors.Type(line, col, "unary %q requires a number, got %s", n.Op, v.Type())
	}
	if n.Op == "-" {
		return -num, nil
	}
	return num, nil
}

func (it *Interpreter) evalBinaryOp(n *ast.BinaryOp) (value.Value, error) {
	line, col := n.Pos()

	// && and || short-circuit and must not evaluate their right operand
	// unless needed, per spec.md §4.3.
	if n.Op == "&&" || n.Op == "||" {
		left, err := it.eval(n.Left)
		if err != nil {
			return nil, err
		}
		leftTruthy := value.Truthy(left)
		if n.Op == "&&" && !leftTruthy {
			return left, nil
		}
		if n.Op == "||" && leftTruthy {
			return left, nil
		}
		return it.eval(n.Right)
	}

	left, err := it.eval(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.eval(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case "==":
		return value.Boolean(value.Equal(left, right)), nil
	case "!=":
		return value.Boolean(!value.Equal(left, right)), nil
	case "+":
		return evalPlus(left, right), nil
	}

	if n.Op == "<" || n.Op == ">" || n.Op == "<=" || n.Op == ">=" {
		return evalComparison(line, col, n.Op, left, right)
	}

	leftNum, leftOK := left.(value.Number)
	rightNum, rightOK := right.(value.Number)
	if !leftOK || !rightOK {
		return nil, errors.Type(line, col, "operator %q requires two numbers, got %s and %s", n.Op, left.Type(), right.Type())
	}
	switch n.Op {
	case "-":
		return leftNum - rightNum, nil
	case "*":
		return leftNum * rightNum, nil
	case "/":
		if rightNum == 0 {
			return nil, errors.ZeroDivision(line, col, "division by zero")
		}
		return leftNum / rightNum, nil
	case "%":
		if rightNum == 0 {
			return nil, errors.ZeroDivision(line, col, "modulo by zero")
		}
		return value.Number(floorMod(float64(leftNum), float64(rightNum))), nil
	}
	return nil, errors.Type(line, col, "unknown operator %q", n.Op)
}

// floorMod computes modulo with the result's sign following the divisor,
// matching the original_source's Python-style `%` rather than Go's
// truncated-division remainder, and preserving any fractional part instead
// of truncating operands to integers first.
func floorMod(l, r float64) float64 {
	m := math.Mod(l, r)
	if m != 0 && (m < 0) != (r < 0) {
		m += r
	}
	return m
}

// evalPlus implements spec.md §4.3's coercing `+`: numeric addition when
// both sides are numbers, otherwise a display-string concatenation.
func evalPlus(left, right value.Value) value.Value {
	leftNum, leftOK := left.(value.Number)
	rightNum, rightOK := right.(value.Number)
	if leftOK && rightOK {
		return leftNum + rightNum
	}
	return value.String(left.Display() + right.Display())
}

func evalComparison(line, col int, op string, left, right value.Value) (value.Value, error) {
	switch l := left.(type) {
	case value.Number:
		r, ok := right.(value.Number)
		if !ok {
			return nil, errors.Type(line, col, "cannot compare number with %s", right.Type())
		}
		return value.Boolean(compareOrdered(op, float64(l), float64(r))), nil
	case value.String:
		r, ok := right.(value.String)
		if !ok {
			return nil, errors.Type(line, col, "cannot compare string with %s", right.Type())
		}
		return value.Boolean(compareOrdered(op, string(l), string(r))), nil
	default:
		return nil, errors.Type(line, col, "operator %q requires numbers or strings, got %s", op, left.Type())
	}
}

func compareOrdered[T int | float64 | string](op string, l, r T) bool {
	switch op {
	case "<":
		return l < r
	case ">":
		return l > r
	case "<=":
		return l <= r
	case ">=":
		return l >= r
	}
	return false
}
