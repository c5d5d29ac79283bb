package isa

import (
	"slices"

	"github.com/ezrec/chip8asm/internal"
)

// Syntax fragments shared by the instruction table.
const (
	reVX    = `V(?P<X>[0-9A-F])`
	reVY    = `V(?P<Y>[0-9A-F])`
	reVXDup = `V(?P<X_>[0-9A-F])`
	reN     = `(?P<N>[-+]?\w+)`
	reNN    = `(?P<NN>[-+]?\w+)`
	reNNN   = `(?P<NNN>[-+]?\w+)`
	reSkip  = `SKIP[\s:;]+`
	reEq    = `\s*(?:==?|EQ(?:UAL(?:-?TO)?)?)\s*`
	reNe    = `\s*(?:!=|NE)\s*`
	reKey   = `K(?:EY)?`
	reTimer = `(?:TIMER?|DELAY)`
	reTone  = `(?:TONE|SOUND)`
	reSet   = `\s*=\s*`
)

// op builds the syntax "Vx <op> Vy".
func op(operator string) string {
	return reVX + `\s*` + operator + `\s*` + reVY
}

// Program flow.
var flowTable = []*Instruction{
	NewInstruction("00E0", `CLEAR|CLS`),
	NewInstruction("00EE", `RET(?:URN)?`),
	NewInstruction("BNNN", `(?:GO(?:TO)?|JUMP)[:;]?\s*V0\s*\+\s*`+reNNN),
	NewInstruction("1NNN", `(?:GO(?:TO)?|JUMP)[:;]?\s*`+reNNN),
	NewInstruction("2NNN", `(?:CALL|DO)\s+`+reNNN),
	NewInstruction("0NNN", `SYS\s+`+reNNN),
}

// Conditional skips. Register and key comparisons are tried
// before the immediate comparisons that would also accept them.
var skipTable = []*Instruction{
	NewInstruction("5XY0", reSkip+reVX+reEq+reVY),
	NewInstruction("9XY0", reSkip+reVX+reNe+reVY),
	NewInstruction("EX9E", reSkip+reVX+reEq+reKey),
	NewInstruction("EXA1", reSkip+reVX+reNe+reKey),
	NewInstruction("3XNN", reSkip+reVX+reEq+reNN),
	NewInstruction("4XNN", reSkip+reVX+reNe+reNN),
}

// Register assignment. "Vx = nn" accepts any word as the operand,
// so it is the last resort.
var registerTable = []*Instruction{
	NewInstruction("8XY0", op(`=`)),
	NewInstruction("8XY1", op(`\|=`)),
	NewInstruction("8XY2", op(`&=`)),
	NewInstruction("8XY3", op(`\^=`)),
	NewInstruction("8XY4", op(`\+=`)),
	NewInstruction("8XY5", op(`-=`)),
	NewInstruction("8XY6", op(`>>=`)),
	NewInstruction("8XY7", op(`=\s*-`)),
	NewInstruction("8XYE", op(`<<=`)),
	NewInstruction("CXNN", reVX+reSet+`RA?ND(?:OM)?\s*&?\s*`+reNN),
	NewInstruction("FX07", reVX+reSet+reTimer),
	NewInstruction("FX0A", reVX+reSet+reKey),
	NewInstruction("7XNN", reVX+`\s*\+=\s*`+reNN),
	NewInstruction("7XNN", reVX+reSet+reVXDup+`\s*\+\s*`+reNN),
	NewInstruction("6XNN", reVX+reSet+reNN),
}

// Timers and sound.
var timerTable = []*Instruction{
	NewInstruction("FX15", reTimer+reSet+reVX),
	NewInstruction("FX18", reTone+reSet+reVX),
}

// Index register, display and memory. "MI = V0:Vx" is tried
// before "MI = Vx".
var memoryTable = []*Instruction{
	NewInstruction("FX1E", `I\s*\+=\s*`+reVX),
	NewInstruction("FX29", `I`+reSet+`SPRITE\s+`+reVX),
	NewInstruction("ANNN", `I`+reSet+reNNN),
	NewInstruction("DXYN", `SHOW\s+`+reN+`[\s\w]*@\s*`+reVX+`[X,\s]*`+reVY),
	NewInstruction("FX55", `MI`+reSet+`V0\s*:\s*`+reVX),
	NewInstruction("FX33", `MI`+reSet+reVX),
	NewInstruction("FX65", `V0\s*:\s*`+reVX+reSet+`MI`),
}

// Table is the pseudo-assembly grammar, in priority order.
// The first matching instruction is used.
var Table = slices.Collect(internal.IterSeqConcat(
	slices.Values(flowTable),
	slices.Values(skipTable),
	slices.Values(registerTable),
	slices.Values(timerTable),
	slices.Values(memoryTable),
))
