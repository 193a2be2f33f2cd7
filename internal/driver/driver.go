// Package driver wires the scanner, parser, and evaluator into the three
// pipeline entry points the CLI exposes, translating their results into
// the exit-code contract: 0 success, 65 lexical/parse error, 70 runtime
// error.
package driver

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gowalk/tlox/internal/errors"
	"github.com/gowalk/tlox/internal/interp"
	"github.com/gowalk/tlox/internal/lexer"
	"github.com/gowalk/tlox/internal/parser"
	"github.com/gowalk/tlox/internal/token"
)

const (
	ExitSuccess   = 0
	ExitDataError = 65
	ExitRuntime   = 70
)

// Tokenize scans source and writes one line per token to stdout in the
// `KIND LEXEME LITERAL` form, with the final line always `EOF  null`.
// Scanning errors go to stderr. Returns ExitDataError if any lexical
// error occurred, ExitSuccess otherwise.
func Tokenize(source string, stdout, stderr io.Writer) int {
	lx := lexer.New(source)
	tokens := lx.ScanTokens()

	for _, tok := range tokens {
		fmt.Fprintln(stdout, formatToken(tok))
	}

	for _, lexErr := range lx.Errors() {
		fmt.Fprintln(stderr, errors.LexError{Line: lexErr.Line, Message: lexErr.Message}.Error())
	}

	if lx.HadError() {
		return ExitDataError
	}
	return ExitSuccess
}

func formatToken(tok token.Token) string {
	literal := "null"
	switch tok.Type {
	case token.STRING:
		literal = tok.Literal.(string)
	case token.NUMBER:
		literal = formatNumberLiteral(tok.Literal.(float64))
	}
	return fmt.Sprintf("%s %s %s", tok.Type, tok.Lexeme, literal)
}

// formatNumberLiteral renders a NUMBER token's literal the way tokenize
// output requires: shortest round-trip decimal, but always with at least
// one fractional digit, unlike runtime print formatting.
func formatNumberLiteral(n float64) string {
	s := strconv.FormatFloat(n, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Parse scans and parses source and, if that succeeded, prints one line
// per top-level statement to stdout: the lexeme the statement's
// TokenLiteral reports (a keyword, a declared name, an operator), not a
// full rendering of the tree. Any lexical or parse error is written to
// stderr. Returns ExitDataError if any error occurred, ExitSuccess
// otherwise.
func Parse(source string, stdout, stderr io.Writer) int {
	lx := lexer.New(source)
	tokens := lx.ScanTokens()

	p := parser.New(tokens)
	stmts := p.Parse()

	hadError := lx.HadError()
	for _, lexErr := range lx.Errors() {
		fmt.Fprintln(stderr, errors.LexError{Line: lexErr.Line, Message: lexErr.Message}.Error())
	}
	for _, parseErr := range p.Errors() {
		fmt.Fprintln(stderr, parseErr.Error())
		hadError = true
	}

	if hadError {
		return ExitDataError
	}

	for _, stmt := range stmts {
		fmt.Fprintln(stdout, stmt.TokenLiteral())
	}
	return ExitSuccess
}

// Run scans, parses, and evaluates source, writing Print output to stdout
// and any error to stderr. Returns ExitDataError if scanning or parsing
// failed (execution never starts), ExitRuntime if evaluation failed, and
// ExitSuccess otherwise.
func Run(source string, stdout, stderr io.Writer) int {
	lx := lexer.New(source)
	tokens := lx.ScanTokens()

	p := parser.New(tokens)
	stmts := p.Parse()

	hadError := lx.HadError()
	for _, lexErr := range lx.Errors() {
		fmt.Fprintln(stderr, errors.LexError{Line: lexErr.Line, Message: lexErr.Message}.Error())
	}
	for _, parseErr := range p.Errors() {
		fmt.Fprintln(stderr, parseErr.Error())
		hadError = true
	}
	if hadError {
		return ExitDataError
	}

	in := interp.NewWithOutput(stdout)
	if err := in.Interpret(stmts); err != nil {
		fmt.Fprintln(stderr, err.Error())
		return ExitRuntime
	}
	return ExitSuccess
}
