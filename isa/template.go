package isa

import (
	"fmt"
	"strconv"
)

// Field is a run of one placeholder letter in a Template.
type Field struct {
	Name  string // Placeholder run, ie "NNN", "NN", "N", "X" or "Y".
	Shift uint   // Bit position of the least significant bit.
	Width uint   // Width in bits, 4 per placeholder letter.
}

// Numeric returns true for an immediate field, false for a register index.
func (fd Field) Numeric() bool {
	return fd.Name[0] == 'N'
}

// Max returns the largest value the field can hold.
func (fd Field) Max() uint16 {
	return uint16(uint32(1)<<fd.Width - 1)
}

// Template is a parsed opcode template.
type Template struct {
	Text   string  // Source text, ie "8XY4".
	Base   Code    // Fixed bits, with all fields zeroed.
	Fields []Field // Placeholder fields, most significant first.
}

// ParseTemplate parses a 4 character opcode template.
func ParseTemplate(text string) (tmpl Template, err error) {
	if len(text) != 4 {
		err = fmt.Errorf("%q: %w", text, ErrTemplateLength)
		return
	}

	tmpl.Text = text

	var last byte
	for n := range len(text) {
		ch := text[n]
		shift := uint(12 - 4*n)

		switch ch {
		case 'N', 'X', 'Y':
			if ch == last {
				fd := &tmpl.Fields[len(tmpl.Fields)-1]
				fd.Name += string(ch)
				fd.Shift = shift
				fd.Width += 4
				break
			}
			for _, fd := range tmpl.Fields {
				if fd.Name[0] == ch {
					err = fmt.Errorf("%q: %w", text, ErrTemplateRepeat)
					return
				}
			}
			tmpl.Fields = append(tmpl.Fields, Field{Name: string(ch), Shift: shift, Width: 4})
		default:
			nibble, perr := strconv.ParseUint(string(ch), 16, 4)
			if perr != nil {
				err = fmt.Errorf("%q: %w", text, ErrTemplateChar)
				return
			}
			tmpl.Base |= Code(nibble) << shift
		}
		last = ch
	}

	for _, fd := range tmpl.Fields {
		if !fd.Numeric() && fd.Width != 4 {
			err = fmt.Errorf("%q: %w", text, ErrTemplateField)
			return
		}
	}

	return
}

// MustTemplate is ParseTemplate, but panics on an invalid template.
func MustTemplate(text string) Template {
	tmpl, err := ParseTemplate(text)
	if err != nil {
		panic(err)
	}
	return tmpl
}

// Pack places the field values into the template's fixed bits.
func (tmpl Template) Pack(values map[string]uint16) (code Code, err error) {
	code = tmpl.Base
	for _, fd := range tmpl.Fields {
		value, ok := values[fd.Name]
		if !ok {
			err = fmt.Errorf("%v %v: %w", tmpl.Text, fd.Name, ErrTemplateMissing)
			return
		}
		if value > fd.Max() {
			err = ErrOverflow{Text: fmt.Sprintf("%#x", value), Width: fd.Width}
			return
		}
		code |= Code(value) << fd.Shift
	}

	return
}

func (tmpl Template) String() string {
	return tmpl.Text
}
