/*
File    : lox/ast/node.go
*/

// Package ast defines the expression and statement node variants produced
// by the parser, plus the canonical printer and value stringifier that walk
// them. Nodes are modeled as a small closed set of concrete types behind two
// marker interfaces rather than a visitor hierarchy: the evaluator and
// printer dispatch on the concrete type with a type switch, which is the
// idiomatic Go substitute for the source's double-dispatch visitor.
package ast

import "github.com/arvindrajan/lox/lexer"

// Expr is implemented by every expression node variant. Expressions own
// their children exclusively; the tree they form is acyclic.
type Expr interface {
	exprNode()
}

// Stmt is implemented by every statement node variant. Statements own their
// sub-expressions and sub-statements exclusively.
type Stmt interface {
	stmtNode()
}

// Literal holds a value fixed at parse time: nil, a bool, a number, or a
// string (see ast.Stringify for each one's value text; ast.Print writes
// numbers with at least one decimal place).
type Literal struct {
	Value any
}

// Grouping wraps a parenthesized sub-expression.
type Grouping struct {
	Inner Expr
}

// Unary applies a prefix operator (`-` or `!`) to a single operand.
type Unary struct {
	Operator lexer.Token
	Right    Expr
}

// Binary applies an infix operator to two operands. Operator carries the
// token so evaluation and error reporting both know the exact source line
// and lexeme.
type Binary struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

// Variable reads the value currently bound to a name in the active
// environment chain.
type Variable struct {
	Name lexer.Token
}

// Assignment evaluates Value and rebinds Name in the nearest enclosing
// scope that already defines it.
type Assignment struct {
	Name  lexer.Token
	Value Expr
}

func (Literal) exprNode()    {}
func (Grouping) exprNode()   {}
func (Unary) exprNode()      {}
func (Binary) exprNode()     {}
func (Variable) exprNode()   {}
func (Assignment) exprNode() {}

// ExpressionStmt evaluates Expr and discards the result.
type ExpressionStmt struct {
	Expr Expr
}

// PrintStmt evaluates Expr, stringifies it, and writes it to stdout with a
// trailing newline.
type PrintStmt struct {
	Expr Expr
}

// VarDecl binds Name to the evaluation of Initializer (or nil, if
// Initializer is nil) in the current scope.
type VarDecl struct {
	Name        lexer.Token
	Initializer Expr
}

// Block executes Statements in a new scope enclosed by the current one,
// discarding that scope when the block exits.
type Block struct {
	Statements []Stmt
}

func (ExpressionStmt) stmtNode() {}
func (PrintStmt) stmtNode()      {}
func (VarDecl) stmtNode()        {}
func (Block) stmtNode()          {}
