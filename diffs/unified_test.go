package diffs

import (
	"reflect"
	"strings"
	"testing"

	"github.com/reusee/tapecode/programs"
)

func TestLines(t *testing.T) {
	for _, c := range []struct {
		program programs.Program
		lines   []string
	}{
		{"", []string{}},
		{"+.", []string{"+.\n"}},
		{"+.<", []string{"+.\n", "<\n"}},
		{"+.>-.<", []string{"+.\n", ">-.\n", "<\n"}},
	} {
		if got := Lines(c.program); !reflect.DeepEqual(got, c.lines) {
			t.Fatalf("%q: got %q", c.program, got)
		}
	}
}

func TestUnified(t *testing.T) {
	diff, err := Unified("a", "b", "+.>.", "+.>.")
	if err != nil {
		t.Fatal(err)
	}
	if diff != "" {
		t.Fatalf("got %q", diff)
	}

	diff, err = Unified("single-pass", "fixed-point", "+.><>.", "+.<>.")
	if err != nil {
		t.Fatal(err)
	}
	for _, expected := range []string{
		"--- single-pass\n",
		"+++ fixed-point\n",
		" +.\n",
		"-><>.\n",
		"+<>.\n",
	} {
		if !strings.Contains(diff, expected) {
			t.Fatalf("expecting %q in %q", expected, diff)
		}
	}
}
