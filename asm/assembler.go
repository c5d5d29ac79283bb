// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"log"
	"slices"
	"strings"

	"github.com/ezrec/chip8asm/internal"
	"github.com/ezrec/chip8asm/isa"
)

// Assembler is a single pass, label-free assembler for CHIP-8 pseudo-assembly.
type Assembler struct {
	Verbose  bool     // If set, verbosely logs the assembler actions.
	Reserved uint16   // Lowest address operand permitted, if non-zero.
	Opcode   []Opcode // List of generated opcodes.
}

// encoder returns the pseudo-assembly encoder for the assembler settings.
func (asm *Assembler) encoder() *isa.Encoder {
	return &isa.Encoder{
		Verbose:  asm.Verbose,
		Reserved: asm.Reserved,
	}
}

// rawLine parses a line that is a literal opcode.
func (asm *Assembler) rawLine(line string) (code isa.Code, ok bool) {
	high, low, ok := isa.ParseRaw(line)
	if !ok {
		return
	}

	if asm.Verbose {
		log.Printf("%v: %3d %3d", strings.ToUpper(strings.TrimSpace(line)), high, low)
	}

	code = isa.Code(high)<<8 | isa.Code(low)
	return
}

// parseLine translates a single line into an instruction word.
func (asm *Assembler) parseLine(enc *isa.Encoder, line string) (code isa.Code, err error) {
	code, ok := asm.rawLine(line)
	if ok {
		return
	}

	opcode, err := enc.Encode(line)
	if err != nil {
		return
	}

	if asm.Verbose {
		log.Printf("Got %v from %v", opcode, strings.TrimSpace(line))
	}

	code, ok = asm.rawLine(opcode)
	if !ok {
		err = ErrOpcodeInvalid(opcode)
		return
	}

	return
}

// currentAddress is the load address of the next opcode.
func (asm *Assembler) currentAddress() uint16 {
	return uint16(isa.MEMORY_START + isa.CODE_SIZE*len(asm.Opcode))
}

// Parse parses an input stream into a Program.
//
// Translation stops at the first line that is neither a raw opcode nor
// a pseudo-assembly instruction; no Program is returned in that case.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)
	enc := asm.encoder()

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Opcode = asm.Opcode[:0]

	for lineno, line = range internal.IterLines(scanner) {
		if asm.Verbose {
			log.Printf("%v: %v", lineno, line)
		}

		var code isa.Code
		code, err = asm.parseLine(enc, line)
		if err != nil {
			return
		}

		asm.Opcode = append(asm.Opcode, Opcode{
			LineNo:  lineno,
			Address: asm.currentAddress(),
			Line:    strings.TrimSpace(line),
			Code:    code,
		})
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}
