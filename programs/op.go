package programs

type Op rune

const (
	Inc       Op = '+'
	Dec       Op = '-'
	Right     Op = '>'
	Left      Op = '<'
	LoopStart Op = '['
	LoopEnd   Op = ']'
	Emit      Op = '.'
)

var AllOps = []Op{
	Inc,
	Dec,
	Right,
	Left,
	LoopStart,
	LoopEnd,
	Emit,
}

func (o Op) Valid() bool {
	switch o {
	case Inc, Dec, Right, Left, LoopStart, LoopEnd, Emit:
		return true
	}
	return false
}

func (o Op) String() string {
	return string(rune(o))
}
