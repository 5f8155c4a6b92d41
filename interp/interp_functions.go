/*
File    : elton/interp/interp_functions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Function declarations, lambda literals, and call dispatch. Per spec.md
// §3's "Invariants" and §4.3's "Function calls" rule, a call resolves its
// name as a builtin first, then the function table, and evaluating a
// lambda registers it in the function table under a synthetic name rather
// than producing a first-class closure value — see the env package doc
// comment for why (the "dynamic snapshot scoping" design spec.md §9 names
// as canonical, kept here rather than upgrading to true lexical closures).
package interp

import (
	"elton/ast"
	"elton/env"
	"elton/errors"
	"elton/value"
)

func (it *Interpreter) evalFunctionDeclaration(n *ast.FunctionDeclaration) (value.Value, error) {
	params := make([]string, len(n.Params))
	for i, p := range n.Params {
		params[i] = p.Name
	}
	it.Env.DefineFunction(n.Name, params, n.Body)
	return value.Unit{}, nil
}

func (it *Interpreter) evalLambda(n *ast.Lambda) (value.Value, error) {
	name := it.Env.NextLambdaName()
	params := make([]string, len(n.Params))
	for i, p := range n.Params {
		params[i] = p.Name
	}
	it.Env.DefineFunction(name, params, n.Body)
	return value.Function{Name: name}, nil
}

func (it *Interpreter) evalFunctionCall(n *ast.FunctionCall) (value.Value, error) {
	line, col := n.Pos()

	args := make([]value.Value, len(n.Arguments))
	for i, argNode := range n.Arguments {
		v, err := it.eval(argNode)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return it.call(n.Name, args, line, col)
}

// call resolves name as a builtin, then as a user function (or a
// lambda registered under its renamed entry), in that order.
func (it *Interpreter) call(name string, args []value.Value, line, col int) (value.Value, error) {
	if builtin, ok := builtins[name]; ok {
		return builtin(it, args, line, col)
	}
	fn, ok := it.Env.LookupFunction(name)
	if !ok {
		return nil, errors.Name(line, col, "undefined function %q", name)
	}
	return it.callUserFunction(fn, args, line, col)
}

// callUserFunction implements spec.md §4.3's call protocol: snapshot the
// environment, bind parameters, run the body, unwrap any return carrier,
// then restore the snapshot regardless of outcome.
func (it *Interpreter) callUserFunction(fn *env.UserFunction, args []value.Value, line, col int) (value.Value, error) {
	if len(args) != len(fn.Params) {
		return nil, errors.Type(line, col, "expected %d argument(s), got %d", len(fn.Params), len(args))
	}

	snapshot := it.Env.Snapshot()
	for i, paramName := range fn.Params {
		it.Env.Set(paramName, args[i])
	}

	_, err := it.evalBlock(fn.Body)
	it.Env.Restore(snapshot)

	if err == nil {
		return value.Unit{}, nil
	}
	if rs, ok := err.(*returnSignal); ok {
		return rs.value, nil
	}
	return nil, err
}
