package logs

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestNewSpan(t *testing.T) {
	level.Set(slog.LevelDebug)
	defer level.Set(slog.LevelInfo)
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		newSpan NewSpan,
	) {
		ctx := context.Background()
		ctx, outer := newSpan(ctx, "verify")
		_, inner := newSpan(ctx, "")
		if outer == inner {
			t.Fatal()
		}

		lines := strings.Split(buf.String(), "\n")
		if !strings.Contains(lines[0], "logs.span="+string(outer)) {
			t.Fatalf("got %v", lines[0])
		}
		if !strings.Contains(lines[0], "name=verify") {
			t.Fatalf("got %v", lines[0])
		}
		if strings.Contains(lines[0], "parent=") {
			t.Fatalf("got %v", lines[0])
		}
		if !strings.Contains(lines[1], "logs.span="+string(inner)) {
			t.Fatalf("got %v", lines[1])
		}
		if !strings.Contains(lines[1], "parent="+string(outer)) {
			t.Fatalf("got %v", lines[1])
		}
		if strings.Contains(lines[1], "name=") {
			t.Fatalf("got %v", lines[1])
		}
	})
}
