package encoders

import (
	"errors"
	"fmt"

	"github.com/reusee/tapecode/programs"
)

var ErrEncodingOverflow = errors.New("encoding overflow")

type Options struct {
	// Offset is the distance from the counter cell to the scratch cell.
	Offset int
	// Threshold is the largest magnitude emitted by direct repetition.
	Threshold int
	// Radius bounds the neighborhood searched for a balanced factorization.
	Radius int
	// FixedPoint selects CleanFixedPoint instead of the single pass Clean.
	FixedPoint bool
	// MaxProgramLen caps the program length, 0 for no limit.
	MaxProgramLen int
}

func DefaultOptions() Options {
	return Options{
		Offset:    1,
		Threshold: 12,
		Radius:    2,
	}
}

func (o Options) validate() error {
	if o.Offset < 1 {
		return fmt.Errorf("invalid offset %d", o.Offset)
	}
	if o.Threshold < 0 {
		return fmt.Errorf("invalid threshold %d", o.Threshold)
	}
	if o.Radius < 0 {
		return fmt.Errorf("invalid radius %d", o.Radius)
	}
	if o.MaxProgramLen < 0 {
		return fmt.Errorf("invalid max program length %d", o.MaxProgramLen)
	}
	return nil
}

type Encoder struct {
	Options Options
}

func (e Encoder) Encode(text string) (programs.Program, error) {
	opts := e.Options
	if err := opts.validate(); err != nil {
		return "", err
	}

	var b programs.Builder
	for _, delta := range Deltas(Codepoints(text)) {
		b.Program(Fragment(abs(delta), opts.Offset, delta < 0, opts))
	}
	program := b.Build()

	if opts.FixedPoint {
		program = CleanFixedPoint(program)
	} else {
		program = Clean(program)
	}

	if opts.MaxProgramLen > 0 {
		if n := program.Len(); n > opts.MaxProgramLen {
			return "", fmt.Errorf("%w: %d instructions, limit %d", ErrEncodingOverflow, n, opts.MaxProgramLen)
		}
	}

	return program, nil
}

// Encode compiles text with the default options.
func Encode(text string) programs.Program {
	program, err := Encoder{Options: DefaultOptions()}.Encode(text)
	if err != nil {
		panic(err)
	}
	return program
}
