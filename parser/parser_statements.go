/*
File    : lox/parser/parser_statements.go
*/
package parser

import (
	"github.com/arvindrajan/lox/ast"
	"github.com/arvindrajan/lox/lexer"
)

// declaration := varDecl | statement
func (p *Parser) declaration() (ast.Stmt, error) {
	if p.match(lexer.VAR) {
		return p.varDeclaration()
	}
	return p.statement()
}

// varDecl := "var" IDENT ( "=" expression )? ";"
//
// A declaration with no initializer binds the name to nil rather than
// leaving it unbound, so a later `get` never has to distinguish "declared
// without a value" from "never declared".
func (p *Parser) varDeclaration() (ast.Stmt, error) {
	name, err := p.consume(lexer.IDENTIFIER, "Expect variable name.")
	if err != nil {
		return nil, err
	}
	var initializer ast.Expr
	if p.match(lexer.EQUAL) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.SEMICOLON, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return ast.VarDecl{Name: name, Initializer: initializer}, nil
}

// statement := printStmt | block | exprStmt
func (p *Parser) statement() (ast.Stmt, error) {
	switch {
	case p.match(lexer.PRINT):
		return p.printStatement()
	case p.match(lexer.LEFT_BRACE):
		statements, err := p.block()
		if err != nil {
			return nil, err
		}
		return ast.Block{Statements: statements}, nil
	default:
		return p.expressionStatement()
	}
}

// printStmt := "print" expression ";"
func (p *Parser) printStatement() (ast.Stmt, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.SEMICOLON, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return ast.PrintStmt{Expr: value}, nil
}

// block := "{" declaration* "}"
//
// The closing brace is consumed here; the scope the block executes in is
// created and discarded by the interpreter, not by the parser.
func (p *Parser) block() ([]ast.Stmt, error) {
	var statements []ast.Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	if _, err := p.consume(lexer.RIGHT_BRACE, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return statements, nil
}

// exprStmt := expression ";"
func (p *Parser) expressionStatement() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.SEMICOLON, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return ast.ExpressionStmt{Expr: expr}, nil
}
