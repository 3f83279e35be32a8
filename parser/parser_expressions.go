/*
File    : lox/parser/parser_expressions.go
*/
package parser

import (
	"github.com/arvindrajan/lox/ast"
	"github.com/arvindrajan/lox/lexer"
)

// expression is the grammar's entry point: expression := assignment.
func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

// equality := comparison ( ("!="|"==") comparison )*
func (p *Parser) equality() (ast.Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		operator := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

// comparison := term ( (">"|">="|"<"|"<=") term )*
func (p *Parser) comparison() (ast.Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		operator := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

// term := factor ( ("-"|"+") factor )*
func (p *Parser) term() (ast.Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.MINUS, lexer.PLUS) {
		operator := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

// factor := unary ( ("/"|"*") unary )*
func (p *Parser) factor() (ast.Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.SLASH, lexer.STAR) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

// unary := ("!"|"-") unary | primary
func (p *Parser) unary() (ast.Expr, error) {
	if p.match(lexer.BANG, lexer.MINUS) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return ast.Unary{Operator: operator, Right: right}, nil
	}
	return p.primary()
}

// primary := "true" | "false" | "nil" | NUMBER | STRING | IDENT | "(" expression ")"
func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(lexer.TRUE):
		return ast.Literal{Value: true}, nil
	case p.match(lexer.FALSE):
		return ast.Literal{Value: false}, nil
	case p.match(lexer.NIL):
		return ast.Literal{Value: nil}, nil
	case p.match(lexer.NUMBER, lexer.STRING):
		return ast.Literal{Value: p.previous().Literal}, nil
	case p.match(lexer.IDENTIFIER):
		return ast.Variable{Name: p.previous()}, nil
	case p.match(lexer.LEFT_PAREN):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return ast.Grouping{Inner: expr}, nil
	}
	return nil, p.newError(p.peek(), "primary", "Expect expression.")
}
