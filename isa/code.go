package isa

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	MEMORY_START = 0x200 // Programs are loaded here; memory below is reserved.
	MEMORY_END   = 0xfff // Last addressable byte.
	CODE_SIZE    = 2     // Bytes per instruction.
)

// Code is a single 16-bit instruction word.
type Code uint16

// Bytes returns the big-endian byte pair of the code.
func (code Code) Bytes() (high, low byte) {
	high = byte(code >> 8)
	low = byte(code)
	return
}

// String returns the canonical 4 hex digit form of the code.
func (code Code) String() string {
	return fmt.Sprintf("%04X", uint16(code))
}

// ParseRaw detects a line that is already a 4 hex digit opcode.
// Any other line returns !ok, so that it can be tried as pseudo-assembly.
func ParseRaw(line string) (high, low byte, ok bool) {
	code, ok := ParseCode(line)
	if !ok {
		return
	}

	high, low = code.Bytes()
	return
}

// ParseCode is ParseRaw, returning the instruction word.
func ParseCode(line string) (code Code, ok bool) {
	text := strings.TrimSpace(line)
	if len(text) != 4 {
		return
	}

	// An explicit base rejects signs, prefixes and underscores.
	value, err := strconv.ParseUint(text, 16, 16)
	if err != nil {
		return
	}

	code = Code(value)
	ok = true
	return
}
