package programs

import (
	"fmt"
	"strings"
)

// Program is the textual form of a tape program.
// Symbols outside the instruction set are kept as is and reported by the machine when reached.
type Program string

func (p Program) Ops() []rune {
	return []rune(string(p))
}

func (p Program) Len() int {
	return len(p.Ops())
}

type Stats struct {
	Length  int
	Counts  map[Op]int
	Invalid int
}

func (p Program) Stats() Stats {
	stats := Stats{
		Counts: make(map[Op]int),
	}
	for _, r := range string(p) {
		stats.Length++
		op := Op(r)
		if !op.Valid() {
			stats.Invalid++
			continue
		}
		stats.Counts[op]++
	}
	return stats
}

func (s Stats) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "length=%d", s.Length)
	for _, op := range AllOps {
		fmt.Fprintf(&sb, " %s=%d", op, s.Counts[op])
	}
	if s.Invalid > 0 {
		fmt.Fprintf(&sb, " invalid=%d", s.Invalid)
	}
	return sb.String()
}

// Builder accumulates instructions.
type Builder struct {
	sb strings.Builder
}

func (b *Builder) Repeat(op Op, n int) *Builder {
	for range n {
		b.sb.WriteRune(rune(op))
	}
	return b
}

func (b *Builder) Op(op Op) *Builder {
	b.sb.WriteRune(rune(op))
	return b
}

func (b *Builder) Program(p Program) *Builder {
	b.sb.WriteString(string(p))
	return b
}

func (b *Builder) Len() int {
	return b.sb.Len()
}

func (b *Builder) Build() Program {
	return Program(b.sb.String())
}
