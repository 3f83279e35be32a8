/*
File    : lox/parser/parser_assignments.go
*/
package parser

import (
	"github.com/arvindrajan/lox/ast"
	"github.com/arvindrajan/lox/lexer"
)

// assignment := IDENT "=" assignment | equality
//
// The left-hand side is parsed in full as an ordinary expression first
// (equality and everything below it); only once an "=" follows is it
// rewritten into an Assignment node, and only if it was a bare Variable.
// Parsing the LHS this way — rather than predicting assignment from the
// first token — is what lets a future, richer LHS (field access, indexing)
// slot into this same check without touching the grammar above it.
func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	if !p.match(lexer.EQUAL) {
		return expr, nil
	}
	equals := p.previous()
	value, err := p.assignment()
	if err != nil {
		return nil, err
	}
	if variable, ok := expr.(ast.Variable); ok {
		return ast.Assignment{Name: variable.Name, Value: value}, nil
	}
	return nil, p.newError(equals, "assignment", "Invalid assignment target.")
}
