// Package interp walks the AST and executes it: an Environment tree for
// scoping, a Value alias for runtime data, and an Interpreter that drives
// statement and expression evaluation.
package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/gowalk/tlox/internal/ast"
	"github.com/gowalk/tlox/internal/errors"
	"github.com/gowalk/tlox/internal/token"
)

// Interpreter evaluates a parsed program. Globals is shared by every call
// frame; env tracks the scope currently in effect as execution
// walks statements.
type Interpreter struct {
	Globals *Environment
	env     *Environment
	stdout  io.Writer
}

// New creates an Interpreter with a fresh global scope, pre-populated with
// the native builtins, writing Print output to stdout.
func New() *Interpreter {
	globals := NewEnvironment()
	defineGlobals(globals)
	return &Interpreter{Globals: globals, env: globals, stdout: os.Stdout}
}

// NewWithOutput is identical to New but directs Print output elsewhere,
// for tests that need to capture it.
func NewWithOutput(w io.Writer) *Interpreter {
	globals := NewEnvironment()
	defineGlobals(globals)
	return &Interpreter{Globals: globals, env: globals, stdout: w}
}

// Interpret executes a full program's statements in order. It stops and
// returns the first runtime error encountered, per the canonical
// exit-on-first-error behavior.
func (in *Interpreter) Interpret(statements []ast.Stmt) error {
	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := in.evaluate(s.Expression)
		return err

	case *ast.PrintStmt:
		value, err := in.evaluate(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.stdout, Stringify(value))
		return nil

	case *ast.VarStmt:
		var value Value
		if s.Initializer != nil {
			v, err := in.evaluate(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		in.env.Define(s.Name.Lexeme, value)
		return nil

	case *ast.BlockStmt:
		return in.executeBlock(s.Statements, NewChildEnvironment(in.env))

	case *ast.IfStmt:
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if IsTruthy(cond) {
			return in.execute(s.Then)
		}
		if s.Else != nil {
			return in.execute(s.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := in.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !IsTruthy(cond) {
				return nil
			}
			if err := in.execute(s.Body); err != nil {
				return err
			}
		}

	case *ast.FunctionStmt:
		fn := NewUserFunction(s, in.env)
		in.env.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.ReturnStmt:
		var value Value
		if s.Value != nil {
			v, err := in.evaluate(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return &returnSignal{value: value}

	default:
		return fmt.Errorf("interp: unhandled statement type %T", stmt)
	}
}

// executeBlock runs statements inside env, always restoring the previous
// environment before returning, including on error or return.
func (in *Interpreter) executeBlock(statements []ast.Stmt, env *Environment) error {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) evaluate(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil

	case *ast.Grouping:
		return in.evaluate(e.Expression)

	case *ast.Variable:
		return in.env.Get(e.Name)

	case *ast.Assign:
		value, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if err := in.env.Assign(e.Name, value); err != nil {
			return nil, err
		}
		return value, nil

	case *ast.Unary:
		return in.evalUnary(e)

	case *ast.Binary:
		return in.evalBinary(e)

	case *ast.Logical:
		return in.evalLogical(e)

	case *ast.Call:
		return in.evalCall(e)

	default:
		return nil, fmt.Errorf("interp: unhandled expression type %T", expr)
	}
}

func (in *Interpreter) evalUnary(e *ast.Unary) (Value, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, errors.NewRuntimeError(e.Operator, "Operand must be a number.")
		}
		return -n, nil
	case token.BANG:
		return !IsTruthy(right), nil
	}

	return nil, errors.NewRuntimeError(e.Operator, "Unknown unary operator.")
}

func (in *Interpreter) evalBinary(e *ast.Binary) (Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.MINUS:
		l, r, ok := numberPair(left, right)
		if !ok {
			return nil, errors.NewRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return l - r, nil

	case token.SLASH:
		l, r, ok := numberPair(left, right)
		if !ok {
			return nil, errors.NewRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return l / r, nil

	case token.STAR:
		l, r, ok := numberPair(left, right)
		if !ok {
			return nil, errors.NewRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return l * r, nil

	case token.PLUS:
		if l, r, ok := numberPair(left, right); ok {
			return l + r, nil
		}
		if l, ok := left.(string); ok {
			if r, ok := right.(string); ok {
				return l + r, nil
			}
		}
		return nil, errors.NewRuntimeError(e.Operator, "Operands must be two numbers or two strings.")

	case token.GREATER:
		return compare(e.Operator, left, right, func(c int) bool { return c > 0 })
	case token.GREATER_EQUAL:
		return compare(e.Operator, left, right, func(c int) bool { return c >= 0 })
	case token.LESS:
		return compare(e.Operator, left, right, func(c int) bool { return c < 0 })
	case token.LESS_EQUAL:
		return compare(e.Operator, left, right, func(c int) bool { return c <= 0 })

	case token.BANG_EQUAL:
		return !IsEqual(left, right), nil
	case token.EQUAL_EQUAL:
		return IsEqual(left, right), nil
	}

	return nil, errors.NewRuntimeError(e.Operator, "Unknown binary operator.")
}

// numberPair reports whether both operands are Numbers, and returns them
// converted if so.
func numberPair(left, right Value) (float64, float64, bool) {
	l, ok := left.(float64)
	if !ok {
		return 0, 0, false
	}
	r, ok := right.(float64)
	if !ok {
		return 0, 0, false
	}
	return l, r, true
}

// compare handles >, >=, <, <= over either two numbers or two strings,
// reducing both cases to a single three-way comparison.
func compare(operator token.Token, left, right Value, accept func(int) bool) (Value, error) {
	if l, r, ok := numberPair(left, right); ok {
		return accept(numberCompare(l, r)), nil
	}
	if l, ok := left.(string); ok {
		if r, ok := right.(string); ok {
			return accept(stringCompare(l, r)), nil
		}
	}
	return nil, errors.NewRuntimeError(operator, "Operands must be numbers.")
}

func numberCompare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func stringCompare(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (in *Interpreter) evalLogical(e *ast.Logical) (Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}

	if e.Operator.Type == token.OR {
		if IsTruthy(left) {
			return left, nil
		}
	} else {
		if !IsTruthy(left) {
			return left, nil
		}
	}

	return in.evaluate(e.Right)
}

func (in *Interpreter) evalCall(e *ast.Call) (Value, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	arguments := make([]Value, 0, len(e.Arguments))
	for _, argExpr := range e.Arguments {
		arg, err := in.evaluate(argExpr)
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, arg)
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, errors.NewRuntimeError(e.Paren, "Can only call functions and classes.")
	}

	if len(arguments) != callable.Arity() {
		return nil, errors.NewRuntimeError(e.Paren, "Expected %d arguments, but got %d.", callable.Arity(), len(arguments))
	}

	return callable.Call(in, arguments)
}
