package configs

import (
	"errors"
	"fmt"
	"testing"
)

var testSchema = `
max_steps?: int & >=0
threshold?: int & >=0
fixed_point_cleanup?: bool
db?: string
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/local.cue",
		"testdata/user.cue",
	}, testSchema)

	var steps int
	if err := loader.AssignFirst("max_steps", &steps); err != nil {
		t.Fatal(err)
	}
	if steps != 1000 {
		t.Fatalf("got %d", steps)
	}

	var db string
	if err := loader.AssignFirst("db", &db); err != nil {
		t.Fatal(err)
	}
	if db != "programs.db" {
		t.Fatalf("got %q", db)
	}

	err := loader.AssignFirst("threshold", &steps)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/local.cue",
		"testdata/user.cue",
	}, testSchema)

	var all []int
	for value, err := range loader.IterCueValues("max_steps") {
		if err != nil {
			t.Fatal(err)
		}
		var n int
		if err := value.Decode(&n); err != nil {
			t.Fatal(err)
		}
		all = append(all, n)
	}
	if str := fmt.Sprintf("%v", all); str != "[1000 5000]" {
		t.Fatalf("got %q", str)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/bad.cue",
	}, testSchema)
	var n int
	err := loader.AssignFirst("max_steps", &n)
	if err == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/missing.cue",
	}, testSchema)
	var n int
	if err := loader.AssignFirst("max_steps", &n); err == nil {
		t.Fatal("should error")
	}
}
