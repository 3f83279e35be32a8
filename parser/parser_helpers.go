/*
File    : lox/parser/parser_helpers.go
*/
package parser

import "github.com/arvindrajan/lox/lexer"

// match advances and returns true if the current token is any of kinds,
// otherwise leaves the cursor untouched and returns false.
func (p *Parser) match(kinds ...lexer.TokenType) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

// check reports whether the current token has the given kind, without
// consuming it.
func (p *Parser) check(kind lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

// advance consumes and returns the current token.
func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

// isAtEnd reports whether the cursor has reached the EOF token.
func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == lexer.EOF
}

// peek returns the current token without consuming it.
func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

// previous returns the most recently consumed token.
func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

// consume requires the current token to have kind, advancing past it; if it
// doesn't match, it raises a ParseError at the current token with msg.
func (p *Parser) consume(kind lexer.TokenType, msg string) (lexer.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.newError(p.peek(), "consume", msg)
}

// synchronize discards tokens after a statement-parsing error until past
// the next ';' or until the next token starts a new declaration/statement,
// so a single error does not cascade into spurious follow-on errors.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == lexer.SEMICOLON {
			return
		}
		switch p.peek().Kind {
		case lexer.CLASS, lexer.FUN, lexer.VAR, lexer.FOR,
			lexer.IF, lexer.WHILE, lexer.PRINT, lexer.RETURN:
			return
		}
		p.advance()
	}
}
