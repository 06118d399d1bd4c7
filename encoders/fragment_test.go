package encoders

import (
	"testing"

	"github.com/reusee/tapecode/programs"
)

func TestFragment(t *testing.T) {
	opts := DefaultOptions()
	zeroThreshold := opts
	zeroThreshold.Threshold = 0

	cases := []struct {
		n         int
		offset    int
		decrement bool
		opts      Options
		want      programs.Program
	}{
		{0, 1, false, opts, ">.<"},
		{5, 1, false, opts, ">+++++.<"},
		{12, 1, true, opts, ">------------.<"},
		{65, 1, false, opts, "++++++++[>++++++++<-]>+.<"},
		{55, 1, true, opts, "+++++++[>--------<-]>+.<"},
		{72, 1, false, opts, "++++++++[>+++++++++<-]>.<"},
		{13, 2, false, opts, "+++[>>++++<<-]>>+.<<"},
		{1, 1, false, zeroThreshold, "+[>+<-]>.<"},
	}
	for _, c := range cases {
		got := Fragment(c.n, c.offset, c.decrement, c.opts)
		if got != c.want {
			t.Fatalf("%d %d %v: got %q, want %q", c.n, c.offset, c.decrement, got, c.want)
		}
	}
}
