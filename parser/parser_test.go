/*
File    : lox/parser/parser_test.go
*/
package parser

import (
	"bytes"
	"testing"

	"github.com/arvindrajan/lox/ast"
	"github.com/arvindrajan/lox/lexer"
	"github.com/stretchr/testify/assert"
)

func tokenize(t *testing.T, src string) []lexer.Token {
	t.Helper()
	var stderr bytes.Buffer
	tokens, hadError := lexer.NewScanner(src, &stderr).ScanTokens()
	assert.False(t, hadError, "unexpected lex error: %s", stderr.String())
	return tokens
}

func TestParseExpressions_Precedence(t *testing.T) {
	var stderr bytes.Buffer
	p := NewParser(tokenize(t, "1 + 2 * 3"), &stderr)
	exprs := p.ParseExpressions()
	assert.Len(t, exprs, 1)
	assert.Equal(t, "(+ 1.0 (* 2.0 3.0))", ast.Print(exprs[0]))
}

func TestParseExpressions_Grouping(t *testing.T) {
	var stderr bytes.Buffer
	p := NewParser(tokenize(t, "(1 + 2) * 3"), &stderr)
	exprs := p.ParseExpressions()
	assert.Len(t, exprs, 1)
	assert.Equal(t, "(* (group (+ 1.0 2.0)) 3.0)", ast.Print(exprs[0]))
}

func TestParseExpressions_ErrorReturnsEmpty(t *testing.T) {
	var stderr bytes.Buffer
	p := NewParser(tokenize(t, "1 +"), &stderr)
	exprs := p.ParseExpressions()
	assert.Empty(t, exprs)
	assert.Equal(t, "[line 1] Error at end: Expect expression.\n", stderr.String())
}

func TestParseExpressions_InvalidAssignmentTarget(t *testing.T) {
	var stderr bytes.Buffer
	p := NewParser(tokenize(t, "1 = 2"), &stderr)
	exprs := p.ParseExpressions()
	assert.Empty(t, exprs)
	assert.Contains(t, stderr.String(), "Invalid assignment target.")
}

func TestParseStatements_VarDeclAndPrint(t *testing.T) {
	var stderr bytes.Buffer
	p := NewParser(tokenize(t, `var a = 1; print a;`), &stderr)
	statements, err := p.ParseStatements()
	assert.NoError(t, err)
	assert.Len(t, statements, 2)
	assert.Equal(t, "(=var a 1.0)", ast.PrintStatement(statements[0]))
	assert.Equal(t, "(print a)", ast.PrintStatement(statements[1]))
}

func TestParseStatements_Block(t *testing.T) {
	var stderr bytes.Buffer
	p := NewParser(tokenize(t, `{ var a = 1; print a; }`), &stderr)
	statements, err := p.ParseStatements()
	assert.NoError(t, err)
	assert.Len(t, statements, 1)
	block, ok := statements[0].(ast.Block)
	assert.True(t, ok)
	assert.Len(t, block.Statements, 2)
}

func TestParseStatements_SynchronizesAfterError(t *testing.T) {
	var stderr bytes.Buffer
	p := NewParser(tokenize(t, "var; var b = 2;"), &stderr)
	statements, err := p.ParseStatements()
	assert.Error(t, err)
	// the malformed `var;` is skipped via synchronize, and the well-formed
	// declaration after it still parses.
	assert.Len(t, statements, 1)
}

func TestParseStatements_MissingSemicolon(t *testing.T) {
	var stderr bytes.Buffer
	p := NewParser(tokenize(t, "print 1"), &stderr)
	_, err := p.ParseStatements()
	assert.Error(t, err)
	assert.Contains(t, stderr.String(), "Expect ';' after value.")
}
