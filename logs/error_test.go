package logs

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestWrapSpan(t *testing.T) {
	ctx := context.Background()
	bad := errors.New("bad")

	if err := WrapSpan(ctx, bad); err != bad {
		t.Fatalf("got %v", err)
	}
	if err := WrapSpan(ctx, nil); err != nil {
		t.Fatalf("got %v", err)
	}

	ctx = context.WithValue(ctx, SpanKey, Span("foo"))
	err := WrapSpan(ctx, bad)
	if !errors.Is(err, bad) {
		t.Fatal()
	}
	if !strings.Contains(err.Error(), "span: foo") {
		t.Fatalf("got %v", err)
	}
}
