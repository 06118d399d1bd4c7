package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/profile"
	"github.com/reusee/dscope"
	"github.com/reusee/tapecode/cmds"
	"github.com/reusee/tapecode/modes"
)

var profileMode = cmds.Var[string]("-profile", "cpu or mem")

func main() {
	cmds.Execute(os.Args[1:])

	if len(actions) == 0 {
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown profile mode: %s", *profileMode)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)
	return runActions(context.Background(), scope, os.Stdout, actions)
}

func runActions(ctx context.Context, scope dscope.Scope, out io.Writer, actions []action) error {
	for _, action := range actions {
		if err := action(ctx, scope, out); err != nil {
			return err
		}
	}
	return nil
}
