package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPattern(t *testing.T) {
	assert := assert.New(t)

	pm := Pattern(`V(?P<X>[0-9A-F])\s*=\s*V(?P<X_>[0-9A-F])\s*\+\s*(?P<NN>\w+)`)
	assert.Equal([]string{"X", "NN"}, pm.Names())

	fields, ok := pm.Match("  v3 = V3 + 0x10  ")
	assert.True(ok)
	assert.Equal(map[string]string{"X": "3", "NN": "0x10"}, fields)

	fields, ok = pm.Match("va = VA + 1")
	assert.True(ok)
	assert.Equal("a", fields["X"])

	_, ok = pm.Match("V3 = V4 + 1")
	assert.False(ok)

	_, ok = pm.Match("V3 = V3 + 1 trailing")
	assert.False(ok)
}

func TestTable(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(len(flowTable)+len(skipTable)+len(registerTable)+len(timerTable)+len(memoryTable), len(Table))

	templates := map[string]bool{}
	for _, ins := range Table {
		templates[ins.String()] = true
		assert.Equal(len(ins.Template.Fields), len(ins.Matcher.Names()), ins.String())
	}

	for _, text := range []string{
		"00E0", "00EE", "0NNN", "1NNN", "2NNN", "3XNN", "4XNN", "5XY0",
		"6XNN", "7XNN", "8XY0", "8XY1", "8XY2", "8XY3", "8XY4", "8XY5",
		"8XY6", "8XY7", "8XYE", "9XY0", "ANNN", "BNNN", "CXNN", "DXYN",
		"EX9E", "EXA1", "FX07", "FX0A", "FX15", "FX18", "FX1E", "FX29",
		"FX33", "FX55", "FX65",
	} {
		assert.True(templates[text], text)
	}
}

func TestNewInstruction_Mismatch(t *testing.T) {
	assert := assert.New(t)

	assert.Panics(func() { NewInstruction("6XNN", `V(?P<X>[0-9A-F])`) })
	assert.Panics(func() { NewInstruction("00EE", `RET (?P<NN>\w+)`) })
	assert.NotPanics(func() { NewInstruction("00EE", `RET`) })
}
