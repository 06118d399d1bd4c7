package encoders

import "github.com/reusee/tapecode/programs"

// Fragment emits the instructions that move the scratch cell by n in the given direction,
// print it, and return the pointer to the counter cell.
// Magnitudes above the threshold are built by a counter loop, which leaves the counter cell at zero.
// The direct path never touches the counter cell.
func Fragment(n int, offset int, decrement bool, opts Options) programs.Program {
	symbol := programs.Inc
	if decrement {
		symbol = programs.Dec
	}

	var b programs.Builder
	if n > opts.Threshold {
		f := SearchFactors(n, opts.Radius)
		adjust := f.Adjust
		if decrement {
			adjust = -adjust
		}
		b.Repeat(programs.Inc, f.Outer).
			Op(programs.LoopStart).
			Repeat(programs.Right, offset).
			Repeat(symbol, f.Inner).
			Repeat(programs.Left, offset).
			Op(programs.Dec).
			Op(programs.LoopEnd).
			Repeat(programs.Right, offset)
		if adjust < 0 {
			b.Repeat(programs.Dec, -adjust)
		} else {
			b.Repeat(programs.Inc, adjust)
		}
	} else {
		b.Repeat(programs.Right, offset).
			Repeat(symbol, n)
	}

	b.Op(programs.Emit).
		Repeat(programs.Left, offset)
	return b.Build()
}
