/*
File    : lox/environment/environment.go
*/

// Package environment implements the interpreter's scope chain: an ordered
// sequence of name-to-value maps, each linked to the scope that encloses it.
package environment

import (
	"fmt"

	"github.com/arvindrajan/lox/lexer"
	"github.com/pkg/errors"
)

// RuntimeError is raised by Get and Assign when a name is never bound
// anywhere in the chain. Token carries the line the bad reference appeared
// on, so the caller can report "[line L]" accurately instead of hardcoding
// line 1.
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// Environment is one scope in the chain: a mapping from name to value, plus
// a possibly-nil link to the enclosing scope. A new scope's Parent is
// always the scope that was active when it was created, which makes the
// chain acyclic by construction.
type Environment struct {
	values map[string]any
	Parent *Environment
}

// New creates a scope enclosed by parent. Pass nil to create the global
// scope, which has no parent and lives for the duration of a `run`.
func New(parent *Environment) *Environment {
	return &Environment{values: make(map[string]any), Parent: parent}
}

// Define binds name to value in this scope only, never walking outward.
// Redefining an existing name in the same scope silently overwrites it —
// there is no error for shadowing or redeclaration.
func (e *Environment) Define(name string, value any) {
	e.values[name] = value
}

// Get walks from this scope outward looking for name, returning the value
// bound at the first scope that defines it. An undefined name anywhere in
// the chain is a RuntimeError naming the token that referenced it.
func (e *Environment) Get(name lexer.Token) (any, error) {
	if value, ok := e.values[name.Lexeme]; ok {
		return value, nil
	}
	if e.Parent != nil {
		return e.Parent.Get(name)
	}
	return nil, undefined(name)
}

// Assign walks from this scope outward and writes value into the first
// scope that already defines name, without creating a new binding. An
// undefined name anywhere in the chain is a RuntimeError.
func (e *Environment) Assign(name lexer.Token, value any) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.Parent != nil {
		return e.Parent.Assign(name, value)
	}
	return undefined(name)
}

func undefined(name lexer.Token) error {
	msg := fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)
	return errors.Wrap(&RuntimeError{Token: name, Message: msg}, "environment lookup")
}
