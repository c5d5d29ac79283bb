package isa

import (
	"regexp"
	"strings"
)

// Matcher recognizes one textual syntax of an instruction.
type Matcher interface {
	// Match returns the operand text of each named field, if the line matches.
	Match(line string) (fields map[string]string, ok bool)
	// Names returns the names of the fields Match returns.
	Names() []string
}

// patternMatcher is a Matcher built on a regular expression.
//
// A capture group named with a trailing '_' is not a field; it must
// repeat the text of the field with the same name, ignoring case.
type patternMatcher struct {
	re *regexp.Regexp
}

var _ Matcher = (*patternMatcher)(nil)

// Pattern compiles a Matcher for the syntax expr.
//
// The expression is matched against the entire line, case-insensitively,
// allowing whitespace around it. Named groups are the fields.
func Pattern(expr string) Matcher {
	return &patternMatcher{
		re: regexp.MustCompile(`(?i)^\s*(?:` + expr + `)\s*$`),
	}
}

func (pm *patternMatcher) Match(line string) (fields map[string]string, ok bool) {
	groups := pm.re.FindStringSubmatch(line)
	if groups == nil {
		return
	}

	fields = make(map[string]string, len(groups))
	for n, name := range pm.re.SubexpNames() {
		if len(name) == 0 || strings.HasSuffix(name, "_") {
			continue
		}
		fields[name] = groups[n]
	}

	for n, name := range pm.re.SubexpNames() {
		same, repeat := strings.CutSuffix(name, "_")
		if !repeat {
			continue
		}
		if !strings.EqualFold(fields[same], groups[n]) {
			return nil, false
		}
	}

	ok = true
	return
}

func (pm *patternMatcher) Names() (names []string) {
	for _, name := range pm.re.SubexpNames() {
		if len(name) == 0 || strings.HasSuffix(name, "_") {
			continue
		}
		names = append(names, name)
	}
	return
}

func (pm *patternMatcher) String() string {
	return pm.re.String()
}
