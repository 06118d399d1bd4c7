package encoders

import "github.com/reusee/tapecode/programs"

func cancels(a, b rune) bool {
	return a == rune(programs.Right) && b == rune(programs.Left) ||
		a == rune(programs.Left) && b == rune(programs.Right)
}

// Clean drops adjacent "><" and "<>" pairs in a single left-to-right pass.
// Pairs formed by a removal are not revisited, so "<<>>" becomes "<>".
func Clean(program programs.Program) programs.Program {
	ops := program.Ops()
	out := make([]rune, 0, len(ops))
	for i := 0; i < len(ops); i++ {
		if i+1 < len(ops) && cancels(ops[i], ops[i+1]) {
			i++
			continue
		}
		out = append(out, ops[i])
	}
	return programs.Program(out)
}

// CleanFixedPoint drops cancelling pointer moves until none are adjacent.
// Output differs from Clean for runs like "<<>>".
func CleanFixedPoint(program programs.Program) programs.Program {
	ops := program.Ops()
	out := make([]rune, 0, len(ops))
	for _, op := range ops {
		if n := len(out); n > 0 && cancels(out[n-1], op) {
			out = out[:n-1]
			continue
		}
		out = append(out, op)
	}
	return programs.Program(out)
}
