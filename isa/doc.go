// Package isa implements the instruction set encoding for a CHIP-8 class
// virtual machine.
//
// Every instruction is a single 16-bit word, stored most significant byte
// first. Instructions are described by a 4 character opcode template such
// as "6XNN", where runs of the placeholder letters N, X, and Y mark operand
// fields. Each template is paired with a case-insensitive textual syntax,
// and the ordered Table of these pairs is the pseudo-assembly grammar.
//
// The Encoder turns a pseudo-assembly line into a canonical 4 hex digit
// opcode, and ParseRaw turns such an opcode into its two bytes.
package isa
