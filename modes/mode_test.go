package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestForProduction(t *testing.T) {
	dscope.New(ForProduction()).Call(func(
		t2 *testing.T,
		mode Mode,
	) {
		if t2 != nil {
			t.Fatal()
		}
		if mode != ModeProduction {
			t.Fatalf("got %v", mode)
		}
	})
}

func TestForTest(t *testing.T) {
	dscope.New(ForTest(t)).Call(func(
		t2 *testing.T,
		mode Mode,
	) {
		if t2 != t {
			t.Fatal()
		}
		if mode != ModeDevelopment {
			t.Fatalf("got %v", mode)
		}
	})
}

func TestModeString(t *testing.T) {
	for mode, str := range map[Mode]string{
		ModeProduction:  "production",
		ModeDevelopment: "development",
		0:               "unknown",
	} {
		if mode.String() != str {
			t.Fatalf("got %s", mode)
		}
	}
}
