package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/reusee/dscope"
	"github.com/reusee/tapecode/cmds"
	"github.com/reusee/tapecode/diffs"
	"github.com/reusee/tapecode/encoders"
	"github.com/reusee/tapecode/logs"
	"github.com/reusee/tapecode/programs"
	"github.com/reusee/tapecode/storages"
	"github.com/reusee/tapecode/tapes"
	"golang.org/x/sync/errgroup"
)

// action runs in the program scope after all arguments are parsed.
type action func(ctx context.Context, scope dscope.Scope, out io.Writer) error

var actions []action

func init() {
	cmds.Define("encode", cmds.Func(func(text *string) {
		actions = append(actions, encodeAction(text))
	}).Desc("print the program of text"))

	cmds.Define("run", cmds.Func(func(program *string) {
		actions = append(actions, runAction(program))
	}).Desc("run program and print its output"))

	cmds.Define("roundtrip", cmds.Func(func(text *string) {
		actions = append(actions, roundtripAction(text))
	}).Desc("encode text, run the program and check the output"))

	cmds.Define("verify", cmds.Func(func(path string) {
		actions = append(actions, verifyAction(path))
	}).Desc("round trip every line of a file"))

	cmds.Define("compare", cmds.Func(func(text *string) {
		actions = append(actions, compareAction(text))
	}).Desc("diff single-pass and fixed-point cleanup of the program of text"))

	cmds.Define("stats", cmds.Func(func(text *string) {
		actions = append(actions, statsAction(text))
	}).Desc("print instruction counts of the program of text"))

	cmds.Define("save", cmds.Func(func(name string, text *string) {
		actions = append(actions, saveAction(name, text))
	}).Desc("encode text and store the program as name"))

	cmds.Define("load", cmds.Func(func(name string) {
		actions = append(actions, loadAction(name))
	}).Desc("print the stored program"))

	cmds.Define("exec", cmds.Func(func(name string) {
		actions = append(actions, execAction(name))
	}).Desc("run the stored program, by name or program id"))

	cmds.Define("list", cmds.Func(func() {
		actions = append(actions, listAction())
	}).Desc("list stored programs"))

	cmds.Define("delete", cmds.Func(func(name string) {
		actions = append(actions, deleteAction(name))
	}).Desc("delete the stored program"))
}

func encodeAction(text *string) action {
	return func(ctx context.Context, scope dscope.Scope, out io.Writer) (err error) {
		input, err := readInput(text)
		if err != nil {
			return err
		}
		scope.Call(func(
			encode encoders.EncodeFunc,
		) {
			var program programs.Program
			program, err = encode(input)
			if err != nil {
				return
			}
			fmt.Fprintln(out, program)
		})
		return
	}
}

func runAction(program *string) action {
	return func(ctx context.Context, scope dscope.Scope, out io.Writer) (err error) {
		input, err := readInput(program)
		if err != nil {
			return err
		}
		scope.Call(func(
			execute tapes.ExecuteFunc,
		) {
			var output string
			output, err = execute(ctx, programs.Program(input))
			if err != nil {
				return
			}
			fmt.Fprint(out, output)
		})
		return
	}
}

type RoundtripError struct {
	Text   string
	Output string
}

func (r RoundtripError) Error() string {
	return fmt.Sprintf("round trip mismatch: %q gives %q", r.Text, r.Output)
}

func roundtrip(ctx context.Context, encode encoders.EncodeFunc, execute tapes.ExecuteFunc, text string) (programs.Program, string, error) {
	program, err := encode(text)
	if err != nil {
		return "", "", err
	}
	output, err := execute(ctx, program)
	if err != nil {
		return "", "", err
	}
	// invalid utf-8 is encoded as U+FFFD
	if output != string([]rune(text))+"\n" {
		return "", "", RoundtripError{
			Text:   text,
			Output: output,
		}
	}
	return program, output, nil
}

func roundtripAction(text *string) action {
	return func(ctx context.Context, scope dscope.Scope, out io.Writer) (err error) {
		input, err := readInput(text)
		if err != nil {
			return err
		}
		scope.Call(func(
			encode encoders.EncodeFunc,
			execute tapes.ExecuteFunc,
		) {
			var output string
			_, output, err = roundtrip(ctx, encode, execute, input)
			if err != nil {
				return
			}
			fmt.Fprint(out, output)
		})
		return
	}
}

func verifyAction(path string) action {
	return func(ctx context.Context, scope dscope.Scope, out io.Writer) (err error) {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		var lines []string
		scanner := bufio.NewScanner(f)
		scanner.Buffer(nil, 16*1024*1024)
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return err
		}

		scope.Call(func(
			encode encoders.EncodeFunc,
			execute tapes.ExecuteFunc,
			logger logs.Logger,
			newSpan logs.NewSpan,
		) {
			ctx, _ := newSpan(ctx, "verify")
			group, ctx := errgroup.WithContext(ctx)
			group.SetLimit(runtime.NumCPU())
			var instructions atomic.Int64
			for i, line := range lines {
				group.Go(func() error {
					program, _, err := roundtrip(ctx, encode, execute, line)
					if err != nil {
						return fmt.Errorf("line %d: %w", i+1, err)
					}
					instructions.Add(int64(program.Len()))
					return nil
				})
			}
			if err = group.Wait(); err != nil {
				return
			}
			logger.Info("verified",
				"path", path,
				"lines", len(lines),
				"instructions", instructions.Load(),
			)
			fmt.Fprintf(out, "%d lines ok\n", len(lines))
		})
		return
	}
}

func compareAction(text *string) action {
	return func(ctx context.Context, scope dscope.Scope, out io.Writer) (err error) {
		input, err := readInput(text)
		if err != nil {
			return err
		}
		scope.Call(func(
			opts encoders.Options,
		) {
			opts.FixedPoint = false
			var single, fixed programs.Program
			single, err = encoders.Encoder{Options: opts}.Encode(input)
			if err != nil {
				return
			}
			opts.FixedPoint = true
			fixed, err = encoders.Encoder{Options: opts}.Encode(input)
			if err != nil {
				return
			}
			var diff string
			diff, err = diffs.Unified("single-pass", "fixed-point", single, fixed)
			if err != nil {
				return
			}
			fmt.Fprintf(out, "single-pass: %d\nfixed-point: %d\n", single.Len(), fixed.Len())
			fmt.Fprint(out, diff)
		})
		return
	}
}

func statsAction(text *string) action {
	return func(ctx context.Context, scope dscope.Scope, out io.Writer) (err error) {
		input, err := readInput(text)
		if err != nil {
			return err
		}
		scope.Call(func(
			encode encoders.EncodeFunc,
		) {
			var program programs.Program
			program, err = encode(input)
			if err != nil {
				return
			}
			fmt.Fprintln(out, program.Stats())
		})
		return
	}
}

func saveAction(name string, text *string) action {
	return func(ctx context.Context, scope dscope.Scope, out io.Writer) (err error) {
		input, err := readInput(text)
		if err != nil {
			return err
		}
		scope.Call(func(
			encode encoders.EncodeFunc,
			lib *storages.Library,
		) {
			var program programs.Program
			program, err = encode(input)
			if err != nil {
				return
			}
			var entry storages.Entry
			entry, err = lib.Save(ctx, name, input, program)
			if err != nil {
				return
			}
			fmt.Fprintln(out, entry.ID)
		})
		return
	}
}

func loadAction(name string) action {
	return func(ctx context.Context, scope dscope.Scope, out io.Writer) (err error) {
		scope.Call(func(
			lib *storages.Library,
		) {
			var entry storages.Entry
			entry, err = lib.Load(ctx, name)
			if err != nil {
				return
			}
			fmt.Fprintln(out, entry.Program)
		})
		return
	}
}

func execAction(name string) action {
	return func(ctx context.Context, scope dscope.Scope, out io.Writer) (err error) {
		scope.Call(func(
			lib *storages.Library,
			execute tapes.ExecuteFunc,
		) {
			var entry storages.Entry
			entry, err = loadByNameOrID(ctx, lib, name)
			if err != nil {
				return
			}
			var output string
			output, err = execute(ctx, entry.Program)
			if err != nil {
				return
			}
			fmt.Fprint(out, output)
		})
		return
	}
}

func loadByNameOrID(ctx context.Context, lib *storages.Library, key string) (storages.Entry, error) {
	entry, err := lib.Load(ctx, key)
	if !errors.Is(err, storages.ErrNotFound) {
		return entry, err
	}
	entries, idErr := lib.LoadByID(ctx, key)
	if idErr != nil {
		return storages.Entry{}, idErr
	}
	if len(entries) == 0 {
		return storages.Entry{}, err
	}
	return entries[0], nil
}

func listAction() action {
	return func(ctx context.Context, scope dscope.Scope, out io.Writer) (err error) {
		scope.Call(func(
			lib *storages.Library,
		) {
			var entries []storages.Entry
			entries, err = lib.List(ctx)
			if err != nil {
				return
			}
			for _, entry := range entries {
				fmt.Fprintf(out, "%s\t%s\t%d\t%s\n",
					entry.Name,
					entry.ID[:12],
					entry.Program.Len(),
					strings.ReplaceAll(entry.Source, "\n", `\n`),
				)
			}
		})
		return
	}
}

func deleteAction(name string) action {
	return func(ctx context.Context, scope dscope.Scope, out io.Writer) (err error) {
		scope.Call(func(
			lib *storages.Library,
		) {
			err = lib.Delete(ctx, name)
		})
		return
	}
}
