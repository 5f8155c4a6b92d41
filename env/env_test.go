/*
File    : elton/env/env_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package env

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"elton/value"
)

func TestSnapshotRestore_ScopeDiscipline(t *testing.T) {
	// spec.md §8: "after a function call, the caller's environment equals
	// its pre-call snapshot except for assignments made at the call
	// site's own scope."
	e := New()
	e.Set("x", value.Number(1))
	e.Set("y", value.String("outer"))

	snap := e.Snapshot()
	e.Set("x", value.Number(99))   // simulates a parameter binding
	e.Set("temp", value.Number(7)) // simulates a local inside the call

	e.Restore(snap)

	x, ok := e.Get("x")
	assert.True(t, ok)
	assert.Equal(t, value.Number(1), x)

	_, ok = e.Get("temp")
	assert.False(t, ok)
}

func TestRenameFunction_MovesTableEntry(t *testing.T) {
	e := New()
	e.DefineFunction("_lambda_0", []string{"n"}, nil)
	e.RenameFunction("_lambda_0", "square")

	_, hasOld := e.LookupFunction("_lambda_0")
	assert.False(t, hasOld)

	fn, hasNew := e.LookupFunction("square")
	assert.True(t, hasNew)
	assert.Equal(t, []string{"n"}, fn.Params)
}

func TestNextLambdaName_Unique(t *testing.T) {
	e := New()
	a := e.NextLambdaName()
	b := e.NextLambdaName()
	assert.NotEqual(t, a, b)
}

func TestDelete_RemovesBinding(t *testing.T) {
	e := New()
	e.Set("x", value.Number(1))
	e.Delete("x")
	_, ok := e.Get("x")
	assert.False(t, ok)
}
