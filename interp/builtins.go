/*
File    : elton/interp/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// The builtin library from spec.md §4.4: numeric, array, and string
// functions. Functional builtins (map/filter/reduce/listcomp) live in
// builtins_functional.go since they need to call back into the
// interpreter. Registration style (a name-keyed table of callbacks) is
// grounded on the teacher's std.Builtins table (std/builtins.go,
// std/arrays.go, std/strings.go in go-mix), collapsed from a slice of
// {Name, Callback} pairs to a map since Elton's dispatch never needs to
// iterate the set, only look a name up.
package interp

import (
	"sort"
	"strings"

	"elton/errors"
	"elton/value"
)

// builtinFunc is the signature every entry in the builtins table
// implements. line/col locate the call site for error messages.
type builtinFunc func(it *Interpreter, args []value.Value, line, col int) (value.Value, error)

var builtins = map[string]builtinFunc{
	"abs":       builtinAbs,
	"max":       builtinMax,
	"min":       builtinMin,
	"round":     builtinRound,
	"length":    builtinLength,
	"push":      builtinPush,
	"pop":       builtinPop,
	"slice":     builtinSlice,
	"reverse":   builtinReverse,
	"sort":      builtinSort,
	"unique":    builtinUnique,
	"substring": builtinSubstring,
	"uppercase": builtinUppercase,
	"lowercase": builtinLowercase,
	"trim":      builtinTrim,
	"split":     builtinSplit,
	"join":      builtinJoin,
}

// The functional builtins are registered in init rather than in the map
// literal above: they call back into Interpreter.call, which reads this
// table, and Go rejects that reference loop in a variable initializer.
func init() {
	builtins["map"] = builtinMap
	builtins["filter"] = builtinFilter
	builtins["reduce"] = builtinReduce
	builtins["listcomp"] = builtinListComp
}

func wantNumber(v value.Value, line, col int, what string) (value.Number, error) {
	n, ok := v.(value.Number)
	if !ok {
		return 0, errors.Type(line, col, "%s requires a number, got %s", what, v.Type())
	}
	return n, nil
}

func wantString(v value.Value, line, col int, what string) (value.String, error) {
	s, ok := v.(value.String)
	if !ok {
		return "", errors.Type(line, col, "%s requires a string, got %s", what, v.Type())
	}
	return s, nil
}

func wantArray(v value.Value, line, col int, what string) (*value.Array, error) {
	a, ok := v.(*value.Array)
	if !ok {
		return nil, errors.Type(line, col, "%s requires an array, got %s", what, v.Type())
	}
	return a, nil
}

func builtinAbs(it *Interpreter, args []value.Value, line, col int) (value.Value, error) {
	if len(args) != 1 {
		return nil, errors.Type(line, col, "abs expects 1 argument, got %d", len(args))
	}
	n, err := wantNumber(args[0], line, col, "abs")
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return -n, nil
	}
	return n, nil
}

// numericVariadic collects the numbers max/min operate over: either the
// argument list itself, or the single array argument's elements.
func numericVariadic(args []value.Value, line, col int, what string) ([]value.Number, error) {
	if len(args) == 1 {
		if arr, ok := args[0].(*value.Array); ok {
			nums := make([]value.Number, len(arr.Elements))
			for i, el := range arr.Elements {
				n, err := wantNumber(el, line, col, what)
				if err != nil {
					return nil, err
				}
				nums[i] = n
			}
			return nums, nil
		}
	}
	if len(args) == 0 {
		return nil, errors.Type(line, col, "%s requires at least one argument", what)
	}
	nums := make([]value.Number, len(args))
	for i, a := range args {
		n, err := wantNumber(a, line, col, what)
		if err != nil {
			return nil, err
		}
		nums[i] = n
	}
	return nums, nil
}

func builtinMax(it *Interpreter, args []value.Value, line, col int) (value.Value, error) {
	nums, err := numericVariadic(args, line, col, "max")
	if err != nil {
		return nil, err
	}
	if len(nums) == 0 {
		return nil, errors.Type(line, col, "max requires at least one number")
	}
	best := nums[0]
	for _, n := range nums[1:] {
		if n > best {
			best = n
		}
	}
	return best, nil
}

func builtinMin(it *Interpreter, args []value.Value, line, col int) (value.Value, error) {
	nums, err := numericVariadic(args, line, col, "min")
	if err != nil {
		return nil, err
	}
	if len(nums) == 0 {
		return nil, errors.Type(line, col, "min requires at least one number")
	}
	best := nums[0]
	for _, n := range nums[1:] {
		if n < best {
			best = n
		}
	}
	return best, nil
}

func builtinRound(it *Interpreter, args []value.Value, line, col int) (value.Value, error) {
	if len(args) != 1 && len(args) != 2 {
		return nil, errors.Type(line, col, "round expects 1 or 2 arguments, got %d", len(args))
	}
	n, err := wantNumber(args[0], line, col, "round")
	if err != nil {
		return nil, err
	}
	decimals := 0
	if len(args) == 2 {
		d, err := wantNumber(args[1], line, col, "round")
		if err != nil {
			return nil, err
		}
		decimals = d.Int()
	}
	scale := value.Number(1)
	for i := 0; i < decimals; i++ {
		scale *= 10
	}
	shifted := float64(n * scale)
	rounded := float64(int64(shifted + sign(shifted)*0.5))
	return value.Number(rounded) / scale, nil
}

func sign(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}

func builtinLength(it *Interpreter, args []value.Value, line, col int) (value.Value, error) {
	if len(args) != 1 {
		return nil, errors.Type(line, col, "length expects 1 argument, got %d", len(args))
	}
	switch v := args[0].(type) {
	case *value.Array:
		return value.Number(len(v.Elements)), nil
	case value.String:
		return value.Number(len(string(v))), nil
	default:
		return nil, errors.Type(line, col, "length requires an array or string, got %s", v.Type())
	}
}

func builtinPush(it *Interpreter, args []value.Value, line, col int) (value.Value, error) {
	if len(args) != 2 {
		return nil, errors.Type(line, col, "push expects 2 arguments, got %d", len(args))
	}
	arr, err := wantArray(args[0], line, col, "push")
	if err != nil {
		return nil, err
	}
	arr.Elements = append(arr.Elements, args[1])
	return value.Number(len(arr.Elements)), nil
}

func builtinPop(it *Interpreter, args []value.Value, line, col int) (value.Value, error) {
	if len(args) != 1 {
		return nil, errors.Type(line, col, "pop expects 1 argument, got %d", len(args))
	}
	arr, err := wantArray(args[0], line, col, "pop")
	if err != nil {
		return nil, err
	}
	if len(arr.Elements) == 0 {
		return nil, errors.Index(line, col, "pop from empty array")
	}
	last := arr.Elements[len(arr.Elements)-1]
	arr.Elements = arr.Elements[:len(arr.Elements)-1]
	return last, nil
}

func builtinSlice(it *Interpreter, args []value.Value, line, col int) (value.Value, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, errors.Type(line, col, "slice expects 2 or 3 arguments, got %d", len(args))
	}
	arr, err := wantArray(args[0], line, col, "slice")
	if err != nil {
		return nil, err
	}
	start, err := wantNumber(args[1], line, col, "slice")
	if err != nil {
		return nil, err
	}
	end := value.Number(len(arr.Elements))
	if len(args) == 3 {
		end, err = wantNumber(args[2], line, col, "slice")
		if err != nil {
			return nil, err
		}
	}
	length := len(arr.Elements)
	s, e := clampBound(start.Int(), length), clampBound(end.Int(), length)
	if s > e {
		s = e
	}
	out := make([]value.Value, e-s)
	copy(out, arr.Elements[s:e])
	return value.NewArray(out), nil
}

func clampBound(i, length int) int {
	if i < 0 {
		i += length
	}
	if i < 0 {
		return 0
	}
	if i > length {
		return length
	}
	return i
}

func builtinReverse(it *Interpreter, args []value.Value, line, col int) (value.Value, error) {
	if len(args) != 1 {
		return nil, errors.Type(line, col, "reverse expects 1 argument, got %d", len(args))
	}
	arr, err := wantArray(args[0], line, col, "reverse")
	if err != nil {
		return nil, err
	}
	out := make([]value.Value, len(arr.Elements))
	for i, el := range arr.Elements {
		out[len(arr.Elements)-1-i] = el
	}
	return value.NewArray(out), nil
}

func builtinSort(it *Interpreter, args []value.Value, line, col int) (value.Value, error) {
	if len(args) != 1 && len(args) != 2 {
		return nil, errors.Type(line, col, "sort expects 1 or 2 arguments, got %d", len(args))
	}
	arr, err := wantArray(args[0], line, col, "sort")
	if err != nil {
		return nil, err
	}
	descending := false
	if len(args) == 2 {
		descending = value.Truthy(args[1])
	}
	out := make([]value.Value, len(arr.Elements))
	copy(out, arr.Elements)
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return lessValue(out[j], out[i])
		}
		return lessValue(out[i], out[j])
	})
	return value.NewArray(out), nil
}

func lessValue(a, b value.Value) bool {
	if an, ok := a.(value.Number); ok {
		if bn, ok := b.(value.Number); ok {
			return an < bn
		}
	}
	return a.Display() < b.Display()
}

func builtinUnique(it *Interpreter, args []value.Value, line, col int) (value.Value, error) {
	if len(args) != 1 {
		return nil, errors.Type(line, col, "unique expects 1 argument, got %d", len(args))
	}
	arr, err := wantArray(args[0], line, col, "unique")
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(arr.Elements))
	var out []value.Value
	for _, el := range arr.Elements {
		key := el.Display()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, el)
	}
	return value.NewArray(out), nil
}

func builtinSubstring(it *Interpreter, args []value.Value, line, col int) (value.Value, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, errors.Type(line, col, "substring expects 2 or 3 arguments, got %d", len(args))
	}
	s, err := wantString(args[0], line, col, "substring")
	if err != nil {
		return nil, err
	}
	start, err := wantNumber(args[1], line, col, "substring")
	if err != nil {
		return nil, err
	}
	end := value.Number(len(string(s)))
	if len(args) == 3 {
		end, err = wantNumber(args[2], line, col, "substring")
		if err != nil {
			return nil, err
		}
	}
	length := len(string(s))
	from, to := clampBound(start.Int(), length), clampBound(end.Int(), length)
	if from > to {
		from = to
	}
	return value.String(string(s)[from:to]), nil
}

func builtinUppercase(it *Interpreter, args []value.Value, line, col int) (value.Value, error) {
	if len(args) != 1 {
		return nil, errors.Type(line, col, "uppercase expects 1 argument, got %d", len(args))
	}
	s, err := wantString(args[0], line, col, "uppercase")
	if err != nil {
		return nil, err
	}
	return value.String(strings.ToUpper(string(s))), nil
}

func builtinLowercase(it *Interpreter, args []value.Value, line, col int) (value.Value, error) {
	if len(args) != 1 {
		return nil, errors.Type(line, col, "lowercase expects 1 argument, got %d", len(args))
	}
	s, err := wantString(args[0], line, col, "lowercase")
	if err != nil {
		return nil, err
	}
	return value.String(strings.ToLower(string(s))), nil
}

func builtinTrim(it *Interpreter, args []value.Value, line, col int) (value.Value, error) {
	if len(args) != 1 {
		return nil, errors.Type(line, col, "trim expects 1 argument, got %d", len(args))
	}
	s, err := wantString(args[0], line, col, "trim")
	if err != nil {
		return nil, err
	}
	return value.String(strings.TrimSpace(string(s))), nil
}

func builtinSplit(it *Interpreter, args []value.Value, line, col int) (value.Value, error) {
	if len(args) != 1 && len(args) != 2 {
		return nil, errors.Type(line, col, "split expects 1 or 2 arguments, got %d", len(args))
	}
	s, err := wantString(args[0], line, col, "split")
	if err != nil {
		return nil, err
	}
	delim := " "
	if len(args) == 2 {
		d, err := wantString(args[1], line, col, "split")
		if err != nil {
			return nil, err
		}
		delim = string(d)
	}
	parts := strings.Split(string(s), delim)
	out := make([]value.Value, len(parts))
	for i, p := range parts {
		out[i] = value.String(p)
	}
	return value.NewArray(out), nil
}

func builtinJoin(it *Interpreter, args []value.Value, line, col int) (value.Value, error) {
	if len(args) != 1 && len(args) != 2 {
		return nil, errors.Type(line, col, "join expects 1 or 2 arguments, got %d", len(args))
	}
	arr, err := wantArray(args[0], line, col, "join")
	if err != nil {
		return nil, err
	}
	sep := ""
	if len(args) == 2 {
		s, err := wantString(args[1], line, col, "join")
		if err != nil {
			return nil, err
		}
		sep = string(s)
	}
	parts := make([]string, len(arr.Elements))
	for i, el := range arr.Elements {
		parts[i] = el.Display()
	}
	return value.String(strings.Join(parts, sep)), nil
}
