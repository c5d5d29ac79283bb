package isa

import (
	"log"
	"strconv"
	"strings"
)

// Encoder translates pseudo-assembly lines into opcodes.
type Encoder struct {
	Verbose  bool           // If set, verbosely logs the encoder actions.
	Reserved uint16         // Lowest 12-bit address permitted, if non-zero.
	Table    []*Instruction // Grammar to use; the package Table if nil.
}

// Lookup finds the first instruction whose syntax matches the line.
func (enc *Encoder) Lookup(line string) (ins *Instruction, fields map[string]string, ok bool) {
	table := enc.Table
	if table == nil {
		table = Table
	}

	for _, ins = range table {
		fields, ok = ins.Matcher.Match(line)
		if ok {
			return
		}
	}

	ins = nil
	return
}

// field resolves the operand text of a single template field.
func (enc *Encoder) field(fd Field, text string) (value uint16, err error) {
	if !fd.Numeric() {
		v64, perr := strconv.ParseUint(text, 16, 4)
		if perr != nil {
			err = ErrRegister
			return
		}
		value = uint16(v64)
		return
	}

	value, err = ParseNumber(text, fd.Width)
	if err != nil {
		return
	}

	if fd.Width == 12 && value < enc.Reserved {
		err = ErrReserved{Value: value, Reserved: enc.Reserved}
		return
	}

	return
}

// EncodeCode encodes a pseudo-assembly line as an instruction word.
func (enc *Encoder) EncodeCode(line string) (code Code, err error) {
	ins, fields, ok := enc.Lookup(line)
	if !ok {
		if enc.Verbose {
			log.Printf("Line matched no assembly instruction: %v", strings.TrimSpace(line))
		}
		err = ErrNoMatch
		return
	}

	values := make(map[string]uint16, len(ins.Template.Fields))
	for _, fd := range ins.Template.Fields {
		var value uint16
		value, err = enc.field(fd, fields[fd.Name])
		if err != nil {
			return
		}
		values[fd.Name] = value
	}

	code, err = ins.Template.Pack(values)
	if err != nil {
		return
	}

	if enc.Verbose {
		log.Printf("%v: %v", ins.Template, code)
	}

	return
}

// Encode encodes a pseudo-assembly line as a canonical 4 hex digit opcode.
func (enc *Encoder) Encode(line string) (opcode string, err error) {
	code, err := enc.EncodeCode(line)
	if err != nil {
		return
	}

	opcode = code.String()
	return
}
