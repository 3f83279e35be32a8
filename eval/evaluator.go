/*
File    : lox/eval/evaluator.go
*/

// Package eval walks an AST and produces values or side effects, using
// Go's type switch in place of the visitor pattern: each Expr/Stmt variant
// is matched directly rather than double-dispatched through an interface.
package eval

import (
	"io"

	"github.com/arvindrajan/lox/ast"
	"github.com/arvindrajan/lox/environment"
)

// Interpreter executes a parsed program against a chain of Environments
// rooted at Globals. Stdout receives PrintStmt output; a fresh Interpreter
// is created per `run`/`evaluate` invocation, so there is no cross-run state.
type Interpreter struct {
	Globals *environment.Environment
	env     *environment.Environment
	Stdout  io.Writer
}

// NewInterpreter creates an interpreter with a single global scope and no
// bindings beyond what the program itself declares.
func NewInterpreter(stdout io.Writer) *Interpreter {
	globals := environment.New(nil)
	return &Interpreter{Globals: globals, env: globals, Stdout: stdout}
}

// Interpret executes statements in order, stopping at the first
// RuntimeError. It returns that error to the caller so `run` can report it
// and exit 70; a nil return means every statement executed.
func (i *Interpreter) Interpret(statements []ast.Stmt) error {
	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Evaluate computes a single expression's value, for the `evaluate` command.
func (i *Interpreter) Evaluate(expr ast.Expr) (any, error) {
	return i.evalExpr(expr)
}
