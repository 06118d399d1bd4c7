package cmds

import "strings"

func describe(command *Command, desc []string) *Command {
	if len(desc) > 0 {
		command.Desc(strings.Join(desc, " "))
	}
	return command
}

// Var defines name <value> to set the returned variable, and name. to reset it.
// desc is shown in the usage.
func Var[T any](name string, desc ...string) *T {
	var value T

	Define(name, describe(Func(func(v T) {
		value = v
	}), desc))

	var zero T
	Define(name+".", Func(func() {
		value = zero
	}).Desc("reset "+name))

	return &value
}

// Switch defines name to turn on and !name to turn off.
func Switch(name string, desc ...string) *bool {
	var value bool

	Define(name, describe(Func(func() {
		value = true
	}), desc))

	Define("!"+name, Func(func() {
		value = false
	}).Desc("turn off "+name))

	return &value
}

// Collect defines name <value>, appending to the returned slice on every use.
func Collect[T any](name string, desc ...string) *[]T {
	var value []T
	Define(name, describe(Func(func(v T) {
		value = append(value, v)
	}), desc))
	return &value
}
