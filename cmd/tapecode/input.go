package main

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/reusee/tapecode/cmds"
)

var inputFile = cmds.Var[string]("-file", "read text or program from file")

// readInput returns arg if given, then the content of -file, then piped stdin.
// A single trailing newline of file or stdin content is dropped.
func readInput(arg *string) (string, error) {
	if arg != nil && *arg != "" {
		return *arg, nil
	}
	if *inputFile != "" {
		content, err := os.ReadFile(*inputFile)
		if err != nil {
			return "", err
		}
		return strings.TrimSuffix(string(content), "\n"), nil
	}
	if isatty.IsTerminal(os.Stdin.Fd()) {
		return "", nil
	}
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(content), "\n"), nil
}
