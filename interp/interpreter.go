/*
File    : elton/interp/interpreter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package interp is Elton's tree-walking evaluator: a single recursive
// function (eval) dispatching on ast.Node's concrete type, backed by one
// process-wide env.Environment. Its overall shape — an Evaluator-like
// struct carrying scope state and an output writer, dispatch methods split
// across several files by concern — is grounded on the teacher's
// eval.Evaluator (eval/evaluator.go, eval/eval_statements.go,
// eval/eval_expressions.go in go-mix), with the scope model swapped for
// spec.md §3/§9's single-environment snapshot/restore discipline instead
// of the teacher's parent-chained scope.Scope.
package interp

import (
	"io"
	"os"

	"elton/ast"
	"elton/env"
	"elton/errors"
	"elton/value"
)

// Interpreter holds the mutable state needed to run a program: the single
// variable/function environment and where print() writes to.
type Interpreter struct {
	Env    *env.Environment
	Writer io.Writer
}

// New creates an interpreter with a fresh environment, writing to stdout.
func New() *Interpreter {
	return &Interpreter{
		Env:    env.New(),
		Writer: os.Stdout,
	}
}

// returnSignal is how a `return` statement unwinds a function body. It is
// returned as the `error` half of eval's result, which lets ordinary Go
// error propagation do the unwinding spec.md §4.3 describes ("the carrier
// flows upward until the nearest function frame catches it") without a
// side channel or a boolean flag threaded through every call.
type returnSignal struct {
	value value.Value
}

func (r *returnSignal) Error() string { return "return used outside of a function" }

// Run evaluates a top-level program: a statement list with no enclosing
// function frame. A `return` at top level is accepted (the signal is
// simply absorbed) since spec.md does not forbid it.
func (it *Interpreter) Run(program []ast.Node) error {
	_, err := it.Eval(program)
	return err
}

// Eval evaluates a top-level program and additionally returns the last
// statement's value, used by the REPL to echo a line's result.
func (it *Interpreter) Eval(program []ast.Node) (value.Value, error) {
	v, err := it.evalBlock(program)
	if err == nil {
		return v, nil
	}
	if _, ok := err.(*returnSignal); ok {
		return value.Unit{}, nil
	}
	return nil, err
}

// evalBlock evaluates a statement list in source order, returning the
// value of the last statement. It does not interpret returnSignal itself —
// per spec.md §4.3, only the function-call machinery does that — so a
// returnSignal (or any runtime error) simply stops the block early and
// propagates to its caller.
func (it *Interpreter) evalBlock(body []ast.Node) (value.Value, error) {
	var last value.Value = value.Unit{}
	for _, stmt := range body {
		v, err := it.eval(stmt)
		if err != nil {
			return v, err
		}
		last = v
	}
	return last, nil
}

// eval dispatches on the node's concrete type. It is the single entry
// point every other evaluation function routes through.
func (it *Interpreter) eval(node ast.Node) (value.Value, error) {
	switch n := node.(type) {
	case *ast.Number:
		return value.Number(n.Value), nil
	case *ast.String:
		return value.String(n.Value), nil
	case *ast.Boolean:
		return value.Boolean(n.Value), nil
	case *ast.Variable:
		return it.evalVariable(n)
	case *ast.ArrayLiteral:
		return it.evalArrayLiteral(n)
	case *ast.ArrayAccess:
		return it.evalArrayAccess(n)
	case *ast.ArraySlice:
		return it.evalArraySlice(n)
	case *ast.Range:
		line, col := n.Pos()
		return nil, errors.Type(line, col, "range expression is only valid as the iterable of a for loop")
	case *ast.BinaryOp:
		return it.evalBinaryOp(n)
	case *ast.UnaryOp:
		return it.evalUnaryOp(n)
	case *ast.VarDeclaration:
		return it.evalVarDeclaration(n)
	case *ast.Assignment:
		return it.evalAssignment(n)
	case *ast.FunctionDeclaration:
		return it.evalFunctionDeclaration(n)
	case *ast.Lambda:
		return it.evalLambda(n)
	case *ast.FunctionCall:
		return it.evalFunctionCall(n)
	case *ast.Return:
		return it.evalReturn(n)
	case *ast.If:
		return it.evalIf(n)
	case *ast.Conditional:
		return it.evalConditional(n)
	case *ast.While:
		return it.evalWhile(n)
	case *ast.For:
		return it.evalFor(n)
	case *ast.TryCatch:
		return it.evalTryCatch(n)
	case *ast.Throw:
		return it.evalThrow(n)
	case *ast.Print:
		return it.evalPrint(n)
	}
	line, col := node.Pos()
	return nil, errors.Type(line, col, "no evaluation rule for this node")
}

func (it *Interpreter) evalVariable(n *ast.Variable) (value.Value, error) {
	v, ok := it.Env.Get(n.Name)
	if !ok {
		line, col := n.Pos()
		return nil, errors.Name(line, col, "undefined variable %q", n.Name)
	}
	return v, nil
}

func (it *Interpreter) evalVarDeclaration(n *ast.VarDeclaration) (value.Value, error) {
	v, err := it.eval(n.Value)
	if err != nil {
		return nil, err
	}
	if fn, ok := v.(value.Function); ok {
		it.Env.RenameFunction(fn.Name, n.Name)
		v = value.Function{Name: n.Name}
	}
	it.Env.Set(n.Name, v)
	return v, nil
}

func (it *Interpreter) evalAssignment(n *ast.Assignment) (value.Value, error) {
	v, err := it.eval(n.Value)
	if err != nil {
		return nil, err
	}
	if fn, ok := v.(value.Function); ok {
		it.Env.RenameFunction(fn.Name, n.Name)
		v = value.Function{Name: n.Name}
	}
	it.Env.Set(n.Name, v)
	return v, nil
}

func (it *Interpreter) evalReturn(n *ast.Return) (value.Value, error) {
	v, err := it.eval(n.Value)
	if err != nil {
		return nil, err
	}
	return value.Unit{}, &returnSignal{value: v}
}

func (it *Interpreter) evalPrint(n *ast.Print) (value.Value, error) {
	parts := make([]string, len(n.Arguments))
	for i, arg := range n.Arguments {
		v, err := it.eval(arg)
		if err != nil {
			return nil, err
		}
		parts[i] = v.Display()
	}
	for i, part := range parts {
		if i > 0 {
			io.WriteString(it.Writer, " ")
		}
		io.WriteString(it.Writer, part)
	}
	io.WriteString(it.Writer, "\n")
	return value.Unit{}, nil
}

func (it *Interpreter) evalThrow(n *ast.Throw) (value.Value, error) {
	v, err := it.eval(n.Value)
	if err != nil {
		return nil, err
	}
	return nil, errors.User(v.Display())
}

func (it *Interpreter) evalTryCatch(n *ast.TryCatch) (value.Value, error) {
	_, err := it.evalBlock(n.TryBody)
	if err == nil {
		return value.Unit{}, nil
	}
	if _, ok := err.(*returnSignal); ok {
		return value.Unit{}, err
	}

	msg := err.Error()
	if ee, ok := errors.As(err); ok {
		msg = ee.Message
	}

	prior, hadPrior := it.Env.Get(n.CatchVar)
	it.Env.Set(n.CatchVar, value.String(msg))

	result, catchErr := it.evalBlock(n.CatchBody)

	if hadPrior {
		it.Env.Set(n.CatchVar, prior)
	} else {
		it.Env.Delete(n.CatchVar)
	}
	return result, catchErr
}
