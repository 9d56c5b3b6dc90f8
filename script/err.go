package script

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrScriptInput = errors.New(f("script has no input() function"))
)

// ErrScriptValue is a callback result that is not an integer, or a list of
// integers.
type ErrScriptValue string

func (err ErrScriptValue) Error() string {
	return f("%v is not an integer or a list of integers", string(err))
}

// ErrCallback locates a failure inside a script callback.
type ErrCallback struct {
	Name string
	Err  error
}

func (err *ErrCallback) Error() string {
	return f("%v() %v", err.Name, err.Err)
}

func (err *ErrCallback) Unwrap() error {
	return err.Err
}
