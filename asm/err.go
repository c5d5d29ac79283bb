package asm

import (
	"github.com/ezrec/chip8asm/translate"
)

var f = translate.From

// ErrSyntax indicates the source line of an assembly error.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrOpcodeInvalid is an encoder result that is not a 4 hex digit opcode.
type ErrOpcodeInvalid string

func (err ErrOpcodeInvalid) Error() string {
	return f("'%v' is not an opcode", string(err))
}
