package isa

import (
	"fmt"
	"slices"
)

// Instruction binds an opcode template to one of its textual syntaxes.
type Instruction struct {
	Template Template
	Matcher  Matcher
}

// NewInstruction pairs a template with a Pattern syntax.
// The syntax fields must be exactly the template fields.
func NewInstruction(template string, syntax string) *Instruction {
	ins := &Instruction{
		Template: MustTemplate(template),
		Matcher:  Pattern(syntax),
	}

	var names []string
	for _, fd := range ins.Template.Fields {
		names = append(names, fd.Name)
	}
	slices.Sort(names)

	fields := slices.Clone(ins.Matcher.Names())
	slices.Sort(fields)

	if !slices.Equal(names, fields) {
		panic(fmt.Sprintf("%v: syntax fields %v do not match template fields %v", template, fields, names))
	}

	return ins
}

func (ins *Instruction) String() string {
	return ins.Template.Text
}
