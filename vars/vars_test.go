package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if v := FirstNonZero(0, 3, 5); v != 3 {
		t.Fatalf("got %v", v)
	}
	if v := FirstNonZero("", "", ":memory:"); v != ":memory:" {
		t.Fatalf("got %v", v)
	}
	if v := FirstNonZero[uint64](); v != 0 {
		t.Fatalf("got %v", v)
	}
}

func TestStrToBool(t *testing.T) {
	for str, expected := range map[string]bool{
		"true":  true,
		"Yes":   true,
		" on ":  true,
		"1":     true,
		"false": false,
		"no":    false,
		"0":     false,
		"maybe": false,
		"":      false,
	} {
		if StrToBool(str) != expected {
			t.Fatalf("%q: expecting %v", str, expected)
		}
	}
}
