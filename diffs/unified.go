package diffs

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/reusee/tapecode/programs"
)

// Lines splits a program after every emit, so that each line produces one codepoint.
func Lines(program programs.Program) []string {
	if program == "" {
		return []string{}
	}
	lines := strings.SplitAfter(string(program), string(programs.Emit))
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i := range lines {
		lines[i] += "\n"
	}
	return lines
}

// Unified renders a unified diff of two programs, one line per emitted codepoint.
// Identical programs give an empty string.
func Unified(aName, bName string, a, b programs.Program) (string, error) {
	if a == b {
		return "", nil
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        Lines(a),
		B:        Lines(b),
		FromFile: aName,
		ToFile:   bName,
		Context:  1,
	})
}
