package intcode

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Program errors
	ErrProgramMalformed = errors.New(f("program malformed"))

	// Execution errors
	ErrOpcodeInvalid  = errors.New(f("opcode invalid"))
	ErrModeInvalid    = errors.New(f("addressing mode invalid"))
	ErrWriteMode      = errors.New(f("write to immediate parameter"))
	ErrAddressInvalid = errors.New(f("address invalid"))
	ErrInputStarved   = errors.New(f("input starved"))
)

// ErrAddress is a memory address that is negative, or past MEMORY_LIMIT.
type ErrAddress int64

func (ea ErrAddress) Error() string {
	return f("address %v invalid", int64(ea))
}

func (ea ErrAddress) Unwrap() error {
	return ErrAddressInvalid
}

// ErrOpcode locates a fault at the instruction that raised it.
type ErrOpcode struct {
	Ip   int64
	Word int64
}

func (eo ErrOpcode) Error() string {
	return f("ip %v: word %v", eo.Ip, eo.Word)
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrParseNumber is a program token that is not an integer.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrSyntax locates a parse failure by cell index.
type ErrSyntax struct {
	Index int
	Token string
	Err   error
}

func (err ErrSyntax) Error() string {
	return f("cell %d '%v' %v", err.Index, err.Token, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
