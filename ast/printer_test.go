/*
File    : lox/ast/printer_test.go
*/
package ast

import (
	"testing"

	"github.com/arvindrajan/lox/lexer"
	"github.com/stretchr/testify/assert"
)

func tok(kind lexer.TokenType, lexeme string) lexer.Token {
	return lexer.NewToken(kind, lexeme, 1)
}

func TestPrint_Literals(t *testing.T) {
	assert.Equal(t, "nil", Print(Literal{Value: nil}))
	assert.Equal(t, "true", Print(Literal{Value: true}))
	assert.Equal(t, "1.5", Print(Literal{Value: 1.5}))
	assert.Equal(t, "hi", Print(Literal{Value: "hi"}))
}

func TestPrint_BinaryAndGrouping(t *testing.T) {
	expr := Binary{
		Left:     Grouping{Inner: Literal{Value: 1.0}},
		Operator: tok(lexer.STAR, "*"),
		Right:    Literal{Value: 2.0},
	}
	assert.Equal(t, "(* (group 1.0) 2.0)", Print(expr))
}

func TestPrint_Unary(t *testing.T) {
	expr := Unary{Operator: tok(lexer.MINUS, "-"), Right: Literal{Value: 3.0}}
	assert.Equal(t, "(- 3.0)", Print(expr))
}

func TestPrint_VariableAndAssignment(t *testing.T) {
	name := tok(lexer.IDENTIFIER, "a")
	assert.Equal(t, "a", Print(Variable{Name: name}))
	assert.Equal(t, "(= a 5.0)", Print(Assignment{Name: name, Value: Literal{Value: 5.0}}))
}

func TestPrintStatement_Variants(t *testing.T) {
	name := tok(lexer.IDENTIFIER, "a")
	assert.Equal(t, "(print a)", PrintStatement(PrintStmt{Expr: Variable{Name: name}}))
	assert.Equal(t, "(=var a nil)", PrintStatement(VarDecl{Name: name}))
	assert.Equal(t, "(=var a 1.0)", PrintStatement(VarDecl{Name: name, Initializer: Literal{Value: 1.0}}))
	assert.Equal(t, "(a)", PrintStatement(ExpressionStmt{Expr: Variable{Name: name}}))

	block := Block{Statements: []Stmt{
		ExpressionStmt{Expr: Variable{Name: name}},
		PrintStmt{Expr: Variable{Name: name}},
	}}
	assert.Equal(t, "(block (a) (print a))", PrintStatement(block))
}
