package asm

import (
	"encoding/binary"
	"iter"

	"github.com/ezrec/chip8asm/isa"
)

// Opcode is a single translated line.
type Opcode struct {
	LineNo  int      // Source line number.
	Address uint16   // Load address of the instruction.
	Line    string   // Source text, trimmed.
	Code    isa.Code // Instruction word.
}

// Program is an assembled program image.
type Program struct {
	Opcodes []Opcode
}

// Debug returns the opcode loaded at an address, or nil.
func (prog *Program) Debug(addr uint16) *Opcode {
	for n, op := range prog.Opcodes {
		if addr >= op.Address && addr < op.Address+isa.CODE_SIZE {
			return &prog.Opcodes[n]
		}
	}

	return nil
}

// Binary returns the program image, most significant byte first.
func (prog *Program) Binary() (bin []byte) {
	bin = make([]byte, 0, isa.CODE_SIZE*len(prog.Opcodes))
	for _, code := range prog.Codes() {
		bin = binary.BigEndian.AppendUint16(bin, uint16(code))
	}

	return
}

// Codes iterates over the load address and word of each instruction.
func (prog *Program) Codes() iter.Seq2[uint16, isa.Code] {
	return func(yield func(addr uint16, code isa.Code) bool) {
		for _, op := range prog.Opcodes {
			if !yield(op.Address, op.Code) {
				return
			}
		}
	}
}
