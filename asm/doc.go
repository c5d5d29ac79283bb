// Package asm assembles CHIP-8 pseudo-assembly into a program image.
//
// Each source line is either a literal 4 hex digit opcode, or a
// pseudo-assembly statement from the isa.Table grammar. Every line becomes
// exactly one 2 byte instruction, loaded from isa.MEMORY_START upwards.
// There are no labels, comments or directives.
package asm
