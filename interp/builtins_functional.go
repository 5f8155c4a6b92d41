/*
File    : elton/interp/builtins_functional.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// map/filter/reduce/listcomp: the higher-order builtins spec.md §4.4
// describes as taking "the callee by name (the first argument evaluates
// to a function-name string)". Each one calls back into it.call, which is
// exactly how the language's own lambda-via-function-table design (see
// interp_functions.go) makes a function value usable here: a lambda
// literal evaluates to a value.Function carrying the synthetic name the
// builtin then calls by.
package interp

import (
	"elton/errors"
	"elton/value"
)

func calleeName(v value.Value, line, col int, what string) (string, error) {
	switch fn := v.(type) {
	case value.Function:
		return fn.Name, nil
	case value.String:
		return string(fn), nil
	default:
		return "", errors.Type(line, col, "%s requires a function name, got %s", what, v.Type())
	}
}

func builtinMap(it *Interpreter, args []value.Value, line, col int) (value.Value, error) {
	if len(args) != 2 {
		return nil, errors.Type(line, col, "map expects 2 arguments, got %d", len(args))
	}
	name, err := calleeName(args[0], line, col, "map")
	if err != nil {
		return nil, err
	}
	arr, err := wantArray(args[1], line, col, "map")
	if err != nil {
		return nil, err
	}
	out := make([]value.Value, len(arr.Elements))
	for i, el := range arr.Elements {
		v, err := it.call(name, []value.Value{el}, line, col)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return value.NewArray(out), nil
}

func builtinFilter(it *Interpreter, args []value.Value, line, col int) (value.Value, error) {
	if len(args) != 2 {
		return nil, errors.Type(line, col, "filter expects 2 arguments, got %d", len(args))
	}
	name, err := calleeName(args[0], line, col, "filter")
	if err != nil {
		return nil, err
	}
	arr, err := wantArray(args[1], line, col, "filter")
	if err != nil {
		return nil, err
	}
	var out []value.Value
	for _, el := range arr.Elements {
		v, err := it.call(name, []value.Value{el}, line, col)
		if err != nil {
			return nil, err
		}
		if value.Truthy(v) {
			out = append(out, el)
		}
	}
	return value.NewArray(out), nil
}

func builtinReduce(it *Interpreter, args []value.Value, line, col int) (value.Value, error) {
	if len(args) != 3 {
		return nil, errors.Type(line, col, "reduce expects 3 arguments, got %d", len(args))
	}
	name, err := calleeName(args[0], line, col, "reduce")
	if err != nil {
		return nil, err
	}
	arr, err := wantArray(args[1], line, col, "reduce")
	if err != nil {
		return nil, err
	}
	acc := args[2]
	for _, el := range arr.Elements {
		acc, err = it.call(name, []value.Value{acc, el}, line, col)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func builtinListComp(it *Interpreter, args []value.Value, line, col int) (value.Value, error) {
	if len(args) != 2 {
		return nil, errors.Type(line, col, "listcomp expects 2 arguments, got %d", len(args))
	}
	return builtinMap(it, args, line, col)
}
