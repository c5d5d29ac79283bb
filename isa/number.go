package isa

import (
	"errors"
	"strconv"
	"strings"
)

// ParseNumber parses an operand for a field of the given width in bits.
//
// The notation is chosen by prefix: "0x" or "h" for hexadecimal, otherwise
// decimal. Prefixes are case-insensitive. Signs are not accepted, so the
// value is never negative.
func ParseNumber(text string, width uint) (value uint16, err error) {
	digits := text
	base := 10

	switch {
	case len(text) >= 2 && strings.EqualFold(text[:2], "0x"):
		digits = text[2:]
		base = 16
	case len(text) >= 1 && (text[0] == 'h' || text[0] == 'H'):
		digits = text[1:]
		base = 16
	}

	v64, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			err = ErrOverflow{Text: text, Width: width}
			return
		}
		err = ErrParseNumber(text)
		return
	}

	if v64 > uint64(1)<<width-1 {
		err = ErrOverflow{Text: text, Width: width}
		return
	}

	value = uint16(v64)
	return
}
