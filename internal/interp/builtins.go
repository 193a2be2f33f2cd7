package interp

import (
	"errors"
	"time"
)

// defineGlobals installs the native functions available in every program,
// bound directly into the global environment before any user code runs.
func defineGlobals(globals *Environment) {
	globals.Define("clock", NewNativeFunction("clock", 0, nativeClock))
}

// nativeClock returns the number of seconds since the Unix epoch, as a
// float so fractional seconds survive.
func nativeClock(interp *Interpreter, arguments []Value) (Value, error) {
	now := time.Now()
	secs := now.Unix()
	if secs < 0 {
		return nil, errors.New("System time before UNIX epoch!")
	}
	return float64(now.UnixNano()) / float64(time.Second), nil
}
