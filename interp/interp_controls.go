/*
File    : elton/interp/interp_controls.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package interp

import (
	"elton/ast"
	"elton/errors"
	"elton/value"
)

func (it *Interpreter) evalIf(n *ast.If) (value.Value, error) {
	cond, err := it.eval(n.Condition)
	if err != nil {
		return nil, err
	}
	if value.Truthy(cond) {
		return it.evalBlock(n.ThenBranch)
	}
	if n.ElseBranch != nil {
		return it.evalBlock(n.ElseBranch)
	}
	return value.Unit{}, nil
}

func (it *Interpreter) evalConditional(n *ast.Conditional) (value.Value, error) {
	cond, err := it.eval(n.Condition)
	if err != nil {
		return nil, err
	}
	if value.Truthy(cond) {
		return it.eval(n.Then)
	}
	if n.Else != nil {
		return it.eval(n.Else)
	}
	return value.Unit{}, nil
}

func (it *Interpreter) evalWhile(n *ast.While) (value.Value, error) {
	var last value.Value = value.Unit{}
	for {
		cond, err := it.eval(n.Condition)
		if err != nil {
			return nil, err
		}
		if !value.Truthy(cond) {
			return last, nil
		}
		last, err = it.evalBlock(n.Body)
		if err != nil {
			return last, err
		}
	}
}

// evalFor implements spec.md §4.3's `for` rule: a *ast.Range iterable
// expands to an inclusive integer sequence; any other iterable must
// evaluate to an array. The iterator name is scoped — its prior binding
// (if any) is restored on exit, matching the scoping rule spec.md §4.3
// gives it explicitly (distinct from the whole-environment snapshot used
// for function calls).
func (it *Interpreter) evalFor(n *ast.For) (value.Value, error) {
	prior, hadPrior := it.Env.Get(n.IteratorName)
	defer func() {
		if hadPrior {
			it.Env.Set(n.IteratorName, prior)
		} else {
			it.Env.Delete(n.IteratorName)
		}
	}()

	var last value.Value = value.Unit{}

	if rangeNode, ok := n.Iterable.(*ast.Range); ok {
		line, col := rangeNode.Pos()
		startVal, err := it.eval(rangeNode.Start)
		if err != nil {
			return nil, err
		}
		endVal, err := it.eval(rangeNode.End)
		if err != nil {
			return nil, err
		}
		startNum, ok := startVal.(value.Number)
		if !ok {
			return nil, errors.Type(line, col, "range start must be a number, got %s", startVal.Type())
		}
		endNum, ok := endVal.(value.Number)
		if !ok {
			return nil, errors.Type(line, col, "range end must be a number, got %s", endVal.Type())
		}
		if !startNum.IsInteger() || !endNum.IsInteger() {
			return nil, errors.Type(line, col, "range bounds must be integral")
		}
		for i := startNum.Int(); i <= endNum.Int(); i++ {
			it.Env.Set(n.IteratorName, value.Number(i))
			v, err := it.evalBlock(n.Body)
			if err != nil {
				return v, err
			}
			last = v
		}
		return last, nil
	}

	line, col := n.Iterable.Pos()
	iterVal, err := it.eval(n.Iterable)
	if err != nil {
		return nil, err
	}
	arr, ok := iterVal.(*value.Array)
	if !ok {
		return nil, errors.Type(line, col, "for loop requires a range or an array, got %s", iterVal.Type())
	}
	for _, elem := range arr.Elements {
		it.Env.Set(n.IteratorName, elem)
		v, err := it.evalBlock(n.Body)
		if err != nil {
			return v, err
		}
		last = v
	}
	return last, nil
}
