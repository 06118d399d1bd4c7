package debugs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/tapecode/modes"
)

func TestTap(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		tap Tap,
		tapping Tapping,
	) {
		if tapping {
			t.Fatal("tapping should be off by default")
		}
		tap(t.Context(), "test", map[string]any{
			"tape": []int{0, 72, 10},
			"dp":   1,
			"dump": func() string {
				return "0 72 10\n  ^"
			},
		})
	})
}
