/*
File    : lox/parser/parser.go
*/

// Package parser implements a recursive-descent parser with one-token
// lookahead over a lexer.Token stream. It exposes two entry points —
// ParseExpressions for the `parse`/`evaluate` commands and ParseStatements
// for `run` — because the grammar's start symbol differs between modes
// (spec.md's `expression` vs `program`).
package parser

import (
	"io"

	"github.com/arvindrajan/lox/ast"
	"github.com/arvindrajan/lox/lexer"
	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// errColor styles syntax diagnostics the same way cmd/lox and lexer style
// theirs: red on a terminal, plain when piped.
var errColor = color.New(color.FgRed)

// ParseError is raised by any parsing step that cannot continue; its Token
// and Message carry everything needed to reproduce the diagnostic text.
type ParseError struct {
	Token   lexer.Token
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

// Parser consumes a flat token vector with a single cursor. It never
// backtracks past current; panic-mode recovery instead fast-forwards
// current to a resynchronization point.
type Parser struct {
	tokens  []lexer.Token
	current int
	stderr  io.Writer
}

// NewParser builds a Parser over tokens, writing syntax diagnostics to
// stderr as they occur.
func NewParser(tokens []lexer.Token, stderr io.Writer) *Parser {
	return &Parser{tokens: tokens, stderr: stderr}
}

// ParseExpressions repeatedly parses top-level expressions until the token
// stream is exhausted. Per spec.md's observed-behavior note, callers of the
// `parse`/`evaluate` commands use only the first result; on any parse error
// this returns an empty slice rather than propagating, since expression-only
// parsing aborts on the first error instead of synchronizing.
func (p *Parser) ParseExpressions() []ast.Expr {
	var exprs []ast.Expr
	for !p.isAtEnd() {
		expr, err := p.expression()
		if err != nil {
			p.reportError(err)
			return nil
		}
		exprs = append(exprs, expr)
	}
	return exprs
}

// ParseStatements parses a full program (declaration*) and returns its
// statement list. A syntax error during statement parsing synchronizes
// (see synchronize in parser_helpers.go) and parsing continues so that
// multiple errors in one file are all reported; the returned error is
// non-nil if any declaration failed.
func (p *Parser) ParseStatements() ([]ast.Stmt, error) {
	var statements []ast.Stmt
	var firstErr error
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			p.reportError(err)
			if firstErr == nil {
				firstErr = err
			}
			p.synchronize()
			continue
		}
		statements = append(statements, stmt)
	}
	return statements, firstErr
}

// reportError writes a ParseError (or any wrapped error carrying one) to
// stderr in spec.md's "[line L] Error at <lexeme>: <msg>" / "at end" form.
func (p *Parser) reportError(err error) {
	var pe *ParseError
	if !errors.As(err, &pe) {
		errColor.Fprintln(p.stderr, err.Error())
		return
	}
	if pe.Token.Kind == lexer.EOF {
		errColor.Fprintf(p.stderr, "[line %d] Error at end: %s\n", pe.Token.Line, pe.Message)
	} else {
		errColor.Fprintf(p.stderr, "[line %d] Error at %s: %s\n", pe.Token.Line, pe.Token.Lexeme, pe.Message)
	}
}

// newError builds a ParseError and wraps it with the step that raised it,
// for Go-level error-chain context (errors.As still recovers the ParseError).
func (p *Parser) newError(token lexer.Token, context, msg string) error {
	return errors.Wrap(&ParseError{Token: token, Message: msg}, context)
}
