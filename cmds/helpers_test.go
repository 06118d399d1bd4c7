package cmds

import (
	"fmt"
	"testing"
)

func TestVar(t *testing.T) {
	a := Var[int]("TestVar-steps")
	b := Var[string]("TestVar-file")
	GlobalExecutor.MustExecute([]string{
		"TestVar-steps", "42",
		"TestVar-file", "hello.bf",
	})
	if *a != 42 {
		t.Fatal()
	}
	if *b != "hello.bf" {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"TestVar-steps.",
	})
	if *a != 0 {
		t.Fatal()
	}
}

func TestSwitch(t *testing.T) {
	foo := Switch("TestSwitch")
	GlobalExecutor.MustExecute([]string{
		"TestSwitch",
	})
	if *foo != true {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"!TestSwitch",
	})
	if *foo != false {
		t.Fatal()
	}
}

func TestCollect(t *testing.T) {
	list := Collect[string]("TestCollect")
	GlobalExecutor.MustExecute([]string{
		"TestCollect", "a",
		"TestCollect", "b",
	})
	if str := fmt.Sprintf("%v", *list); str != "[a b]" {
		t.Fatalf("got %s", str)
	}
}

func TestTypedVar(t *testing.T) {
	type Name string
	v := Var[Name]("TestTypedVar")
	GlobalExecutor.MustExecute([]string{
		"TestTypedVar", "hello",
	})
	if *v != "hello" {
		t.Fatal()
	}
}

func TestHelperDescriptions(t *testing.T) {
	Var[int]("TestHelperDescriptions-steps", "bound", "the steps")
	Switch("TestHelperDescriptions-tap", "open a REPL on faults")
	Collect[string]("TestHelperDescriptions-lines")

	for name, expected := range map[string]string{
		"TestHelperDescriptions-steps":  "bound the steps",
		"TestHelperDescriptions-steps.": "reset TestHelperDescriptions-steps",
		"TestHelperDescriptions-tap":    "open a REPL on faults",
		"!TestHelperDescriptions-tap":   "turn off TestHelperDescriptions-tap",
		"TestHelperDescriptions-lines":  "",
	} {
		command, ok := GlobalExecutor.commands[name]
		if !ok {
			t.Fatalf("%s not defined", name)
		}
		if command.Description != expected {
			t.Fatalf("%s: got %q", name, command.Description)
		}
	}
}
