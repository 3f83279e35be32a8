/*
File    : lox/environment/environment_test.go
*/
package environment

import (
	"testing"

	"github.com/arvindrajan/lox/lexer"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func name(lexeme string) lexer.Token {
	return lexer.NewToken(lexer.IDENTIFIER, lexeme, 1)
}

func TestDefineAndGet(t *testing.T) {
	env := New(nil)
	env.Define("a", 1.0)
	value, err := env.Get(name("a"))
	assert.NoError(t, err)
	assert.Equal(t, 1.0, value)
}

func TestGet_UndefinedIsRuntimeError(t *testing.T) {
	env := New(nil)
	_, err := env.Get(name("missing"))
	assert.Error(t, err)
	var rerr *RuntimeError
	assert.True(t, errors.As(err, &rerr))
	assert.Equal(t, "Undefined variable 'missing'.", rerr.Message)
}

func TestDefine_RedefinitionOverwrites(t *testing.T) {
	env := New(nil)
	env.Define("a", 1.0)
	env.Define("a", 2.0)
	value, err := env.Get(name("a"))
	assert.NoError(t, err)
	assert.Equal(t, 2.0, value)
}

func TestGet_WalksOuterScopes(t *testing.T) {
	outer := New(nil)
	outer.Define("a", "outer")
	inner := New(outer)
	value, err := inner.Get(name("a"))
	assert.NoError(t, err)
	assert.Equal(t, "outer", value)
}

func TestDefine_InnerShadowsOuter(t *testing.T) {
	outer := New(nil)
	outer.Define("a", "outer")
	inner := New(outer)
	inner.Define("a", "inner")

	innerValue, err := inner.Get(name("a"))
	assert.NoError(t, err)
	assert.Equal(t, "inner", innerValue)

	outerValue, err := outer.Get(name("a"))
	assert.NoError(t, err)
	assert.Equal(t, "outer", outerValue)
}

func TestAssign_WritesToDefiningScope(t *testing.T) {
	outer := New(nil)
	outer.Define("a", "outer")
	inner := New(outer)

	assert.NoError(t, inner.Assign(name("a"), "reassigned"))

	innerValue, _ := inner.Get(name("a"))
	outerValue, _ := outer.Get(name("a"))
	assert.Equal(t, "reassigned", innerValue)
	assert.Equal(t, "reassigned", outerValue)
}

func TestAssign_UndefinedIsRuntimeError(t *testing.T) {
	env := New(nil)
	err := env.Assign(name("missing"), 1.0)
	assert.Error(t, err)
}
