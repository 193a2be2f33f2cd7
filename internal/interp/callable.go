package interp

import (
	"github.com/gowalk/tlox/internal/ast"
)

// Callable is anything that can appear on the left of a call expression:
// a native builtin or a user-defined function.
type Callable interface {
	Arity() int
	Call(interp *Interpreter, arguments []Value) (Value, error)
	String() string
}

// NativeFunction wraps a Go function as a callable builtin, such as clock.
type NativeFunction struct {
	name string
	arity int
	fn    func(interp *Interpreter, arguments []Value) (Value, error)
}

// NewNativeFunction builds a NativeFunction with the given arity and
// implementation.
func NewNativeFunction(name string, arity int, fn func(interp *Interpreter, arguments []Value) (Value, error)) *NativeFunction {
	return &NativeFunction{name: name, arity: arity, fn: fn}
}

func (n *NativeFunction) Arity() int { return n.arity }

func (n *NativeFunction) Call(interp *Interpreter, arguments []Value) (Value, error) {
	return n.fn(interp, arguments)
}

func (n *NativeFunction) String() string {
	return "<native fn " + n.name + ">"
}

// UserFunction is a function declared in source. It captures the
// environment active at the point of declaration, so names in its body
// resolve through the scope it was defined in (including bindings added
// to or changed in that scope later), not through the caller's scope.
type UserFunction struct {
	declaration *ast.FunctionStmt
	closure     *Environment
}

// NewUserFunction binds declaration to the environment it was declared in.
func NewUserFunction(declaration *ast.FunctionStmt, closure *Environment) *UserFunction {
	return &UserFunction{declaration: declaration, closure: closure}
}

func (f *UserFunction) Arity() int {
	return len(f.declaration.Params)
}

func (f *UserFunction) Call(interp *Interpreter, arguments []Value) (Value, error) {
	env := NewChildEnvironment(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, arguments[i])
	}

	err := interp.executeBlock(f.declaration.Body, env)
	if ret, ok := err.(*returnSignal); ok {
		return ret.value, nil
	}
	if err != nil {
		return nil, err
	}
	return nil, nil
}

func (f *UserFunction) String() string {
	return "<fn " + f.declaration.Name.Lexeme + ">"
}

// returnSignal unwinds the Go call stack back to the enclosing
// UserFunction.Call when a return statement executes. It satisfies error
// purely so it can travel through the same statement-execution error
// channel as genuine runtime errors; Call distinguishes it with a type
// assertion before it ever reaches a caller as a real error.
type returnSignal struct {
	value Value
}

func (r *returnSignal) Error() string { return "return" }
