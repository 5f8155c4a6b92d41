/*
File    : elton/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements Elton's Read-Eval-Print Loop: an interactive
session backed by one long-lived interp.Interpreter (so variables and
function declarations persist line to line), readline for history and
line editing, and colored output for results and errors.

Adapted from the teacher's repl.Repl (repl/repl.go in go-mix): the banner/
version/prompt configuration struct, the readline setup, and the colored
output survive; the teacher's eval.Evaluator and its single-error-producing
Eval are replaced with parser.ParseProgram and interp.Interpreter.Eval.
The teacher's executeWithRecovery panic/recover wrapper is not kept: every
failure is a typed *errors.EltonError returned normally, and no recover is
installed around parsing or evaluation.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"elton/errors"
	"elton/interp"
	"elton/parser"
	"elton/value"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for one interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl with the given banner, version, author, separator
// line, license, and prompt string.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintln(w, "Welcome to Elton!")
	cyanColor.Fprintln(w, "Type your code and press enter")
	cyanColor.Fprintln(w, "Type '.exit' to quit")
	cyanColor.Fprintln(w, "Use up/down arrows to navigate command history")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the REPL loop against one interpreter instance until the
// user exits or input ends. reader is accepted for interface symmetry
// with file execution but readline reads from the controlling terminal
// directly; writer receives the banner, results, and errors.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(writer, "could not start readline: %v\n", err)
		return
	}
	defer rl.Close()

	it := interp.New()
	it.Writer = writer

	for {
		line, err := rl.Readline()
		if err != nil {
			io.WriteString(writer, "Good Bye!\n")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			io.WriteString(writer, "Good Bye!\n")
			return
		}

		source := line
		for braceDepth(source) > 0 {
			rl.SetPrompt("       ... ")
			cont, err := rl.Readline()
			if err != nil {
				io.WriteString(writer, "Good Bye!\n")
				return
			}
			source += "\n" + cont
		}
		rl.SetPrompt(r.Prompt)
		rl.SaveHistory(source)

		r.evalLine(writer, it, source)
	}
}

// braceDepth counts unbalanced '{' against '}' in source, ignoring braces
// inside string literals so a literal containing "}" does not fool the
// REPL into asking for another line. It drives the REPL's multi-line
// continuation: a function or lambda body spanning several Enter presses
// stays open until its braces balance.
func braceDepth(source string) int {
	depth := 0
	inString := false
	escaped := false
	for _, r := range source {
		switch {
		case escaped:
			escaped = false
		case inString && r == '\\':
			escaped = true
		case r == '"':
			inString = !inString
		case inString:
			// skip
		case r == '{':
			depth++
		case r == '}':
			depth--
		}
	}
	return depth
}

// evalLine parses and runs a single line of input against the session's
// shared interpreter, reporting a syntax or runtime error in red and
// echoing any non-Unit result in yellow — the one REPL-only behavior the
// teacher's executeWithRecovery has that file execution does not need.
func (r *Repl) evalLine(writer io.Writer, it *interp.Interpreter, line string) {
	program, err := parser.ParseProgram(line)
	if err != nil {
		r.reportError(writer, err)
		return
	}
	result, err := it.Eval(program)
	if err != nil {
		r.reportError(writer, err)
		return
	}
	if _, isUnit := result.(value.Unit); !isUnit {
		yellowColor.Fprintf(writer, "%s\n", result.Display())
	}
}

func (r *Repl) reportError(writer io.Writer, err error) {
	if ee, ok := errors.As(err); ok {
		redColor.Fprintf(writer, "%s: %s\n", ee.Kind, ee.Message)
		return
	}
	redColor.Fprintf(writer, "Runtime Error: %v\n", err)
}
