package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/tapecode/cmds"
	"github.com/reusee/tapecode/modes"
	"github.com/reusee/tapecode/storages"
	"github.com/reusee/tapecode/tapes"
	"github.com/stretchr/testify/require"
)

func testScope(t *testing.T) dscope.Scope {
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	)
}

func runArgs(t *testing.T, scope dscope.Scope, args ...string) (string, error) {
	t.Helper()
	actions = nil
	require.NoError(t, cmds.GlobalExecutor.Execute(args))
	buf := new(bytes.Buffer)
	err := runActions(context.Background(), scope, buf, actions)
	return buf.String(), err
}

func TestEncodeAndRun(t *testing.T) {
	scope := testScope(t)

	out, err := runArgs(t, scope, "encode", "A")
	require.NoError(t, err)
	require.Equal(t, "++++++++[>++++++++<-]>+.<+++++++[>--------<-]>+.<\n", out)

	out, err = runArgs(t, scope, "run", strings.TrimSpace(out))
	require.NoError(t, err)
	require.Equal(t, "A\n", out)

	out, err = runArgs(t, scope, "roundtrip", "Hello, 世界")
	require.NoError(t, err)
	require.Equal(t, "Hello, 世界\n", out)

	// actions run in order
	out, err = runArgs(t, scope, "run", "+++.", "run", "++++.")
	require.NoError(t, err)
	require.Equal(t, "\x03\x04", out)
}

func TestRunFault(t *testing.T) {
	_, err := runArgs(t, testScope(t), "run", "<")
	require.ErrorIs(t, err, tapes.ErrTapeUnderflow)
}

func TestStats(t *testing.T) {
	out, err := runArgs(t, testScope(t), "stats", "A")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "length=49 "), out)
}

func TestCompare(t *testing.T) {
	out, err := runArgs(t, testScope(t), "compare", "Hello")
	require.NoError(t, err)
	require.Contains(t, out, "single-pass: ")
	require.Contains(t, out, "fixed-point: ")
}

func TestVerify(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lines.txt")
	require.NoError(t, os.WriteFile(path, []byte("foo\n\nbar baz\nHello, 世界\n"), 0644))
	out, err := runArgs(t, testScope(t), "verify", path)
	require.NoError(t, err)
	require.Equal(t, "4 lines ok\n", out)
}

func TestLibraryCommands(t *testing.T) {
	scope := testScope(t)

	out, err := runArgs(t, scope, "save", "greeting", "Hello")
	require.NoError(t, err)
	require.Len(t, strings.TrimSpace(out), 64)

	id := strings.TrimSpace(out)

	out, err = runArgs(t, scope, "exec", "greeting")
	require.NoError(t, err)
	require.Equal(t, "Hello\n", out)

	out, err = runArgs(t, scope, "exec", id)
	require.NoError(t, err)
	require.Equal(t, "Hello\n", out)

	out, err = runArgs(t, scope, "load", "greeting")
	require.NoError(t, err)
	require.Equal(t, "++++++++[>+++++++++<-]>.<+++++[>++++++<-]>-.+++++++..+++.<++++++++++[>----------<-]>-.<\n", out)

	out, err = runArgs(t, scope, "list")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "greeting\t"), out)
	require.True(t, strings.HasSuffix(out, "\tHello\n"), out)

	_, err = runArgs(t, scope, "delete", "greeting")
	require.NoError(t, err)
	_, err = runArgs(t, scope, "load", "greeting")
	require.ErrorIs(t, err, storages.ErrNotFound)
	_, err = runArgs(t, scope, "exec", id)
	require.ErrorIs(t, err, storages.ErrNotFound)
}
