package isa

import (
	"errors"

	"github.com/ezrec/chip8asm/translate"
)

var f = translate.From

var (
	// Template errors
	ErrTemplateLength  = errors.New(f("template must be 4 characters"))
	ErrTemplateChar    = errors.New(f("template character invalid"))
	ErrTemplateField   = errors.New(f("template field width invalid"))
	ErrTemplateRepeat  = errors.New(f("template field repeated"))
	ErrTemplateMissing = errors.New(f("template field has no value"))

	// Encoder errors
	ErrNoMatch  = errors.New(f("no instruction matched"))
	ErrRegister = errors.New(f("register invalid"))
)

// ErrParseNumber is an operand that is not a decimal, 0x hex or h hex literal.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrOverflow is an operand that does not fit its field.
type ErrOverflow struct {
	Text  string // Operand text.
	Width uint   // Width of the field, in bits.
}

func (err ErrOverflow) Error() string {
	return f("'%v' overflows %d-bit field (maximum %#x)", err.Text, err.Width, uint64(1)<<err.Width-1)
}

// ErrReserved is an address operand inside reserved low memory.
type ErrReserved struct {
	Value    uint16 // Address requested.
	Reserved uint16 // First unreserved address.
}

func (err ErrReserved) Error() string {
	return f("address %#x is in reserved memory below %#x", err.Value, err.Reserved)
}
