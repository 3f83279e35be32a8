/*
File    : lox/eval/eval_statements.go
*/
package eval

import (
	"fmt"

	"github.com/arvindrajan/lox/ast"
	"github.com/arvindrajan/lox/environment"
)

// execute dispatches on the concrete Stmt variant: ExpressionStmt,
// PrintStmt, VarDecl, Block.
func (i *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case ast.ExpressionStmt:
		_, err := i.evalExpr(s.Expr)
		return err
	case ast.PrintStmt:
		return i.execPrint(s)
	case ast.VarDecl:
		return i.execVarDecl(s)
	case ast.Block:
		return i.executeBlock(s.Statements, environment.New(i.env))
	}
	return fmt.Errorf("eval: unhandled statement type %T", stmt)
}

func (i *Interpreter) execPrint(s ast.PrintStmt) error {
	value, err := i.evalExpr(s.Expr)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(i.Stdout, ast.Stringify(value))
	return err
}

func (i *Interpreter) execVarDecl(s ast.VarDecl) error {
	var value any
	if s.Initializer != nil {
		var err error
		value, err = i.evalExpr(s.Initializer)
		if err != nil {
			return err
		}
	}
	i.env.Define(s.Name.Lexeme, value)
	return nil
}

// executeBlock runs statements in a fresh child scope, restoring the
// previous scope on the way out — including when a statement fails —
// so a block's bindings never leak into its enclosing scope.
func (i *Interpreter) executeBlock(statements []ast.Stmt, enclosing *environment.Environment) error {
	previous := i.env
	i.env = enclosing
	defer func() { i.env = previous }()

	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}
