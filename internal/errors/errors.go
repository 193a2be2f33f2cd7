// Package errors formats the diagnostics produced by the lexer, parser,
// and evaluator into the line-tagged form the driver prints to stderr.
package errors

import (
	"fmt"
	"strings"

	"github.com/gowalk/tlox/internal/token"
)

// RuntimeError is a failure raised while evaluating the AST: an undefined
// variable, a type mismatch in an operator, a bad call. It carries the
// token whose line identifies where evaluation stopped.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] %s", e.Token.Line, e.Message)
}

// NewRuntimeError builds a RuntimeError anchored at tok.
func NewRuntimeError(tok token.Token, format string, args ...any) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}

// LexError is a single scanning failure.
type LexError struct {
	Line    int
	Message string
}

func (e LexError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// ParseError is a single parse failure, already formatted with a
// human-readable message by the parser.
type ParseError struct {
	Line    int
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("[line %d] %s", e.Line, e.Message)
}

// JoinLines renders one error per line, in order, for writing to stderr.
func JoinLines(errs []error) string {
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}
