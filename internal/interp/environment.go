package interp

import (
	"github.com/gowalk/tlox/internal/errors"
	"github.com/gowalk/tlox/internal/token"
)

// Environment binds names to values within a lexical scope. Scopes chain
// through Enclosing so a lookup that misses locally walks outward until it
// either finds a binding or runs off the global scope.
type Environment struct {
	values    map[string]Value
	Enclosing *Environment
}

// NewEnvironment creates a top-level (global) scope.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]Value)}
}

// NewChildEnvironment creates a scope nested inside enclosing, used for
// block bodies and function call frames.
func NewChildEnvironment(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]Value), Enclosing: enclosing}
}

// Define binds name in this scope, unconditionally. Redeclaring an existing
// name in the same scope silently replaces it.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get resolves name, walking outward through enclosing scopes.
func (e *Environment) Get(name token.Token) (Value, error) {
	if value, ok := e.values[name.Lexeme]; ok {
		return value, nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return nil, errors.NewRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
}

// Assign stores value into the nearest existing binding of name, walking
// outward through enclosing scopes. It does not create a new binding.
func (e *Environment) Assign(name token.Token, value Value) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, value)
	}
	return errors.NewRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
}
