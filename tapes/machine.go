package tapes

import (
	"encoding/gob"
	"io"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/reusee/tapecode/programs"
)

// Machine is the complete state of a run.
// The zero Machine is not usable; create one with New.
type Machine struct {
	Code   []rune
	Jumps  JumpTable
	Tape   []int
	DP     int
	IP     int
	Output []rune
	Steps  uint64
	// MaxTape caps the tape length, 0 for no cap.
	MaxTape int

	fault error
}

func New(program programs.Program, opts Options) (*Machine, error) {
	code := program.Ops()
	jumps, err := opts.JumpCache.Get(program, code)
	if err != nil {
		return nil, err
	}
	// cached tables are shared between machines
	return &Machine{
		Code:    code,
		Jumps:   slices.Clone(jumps),
		Tape:    []int{0},
		MaxTape: opts.MaxTape,
	}, nil
}

func (m *Machine) Done() bool {
	return m.IP >= len(m.Code)
}

// Fault returns the fault that stopped the machine, if any.
func (m *Machine) Fault() error {
	return m.fault
}

// Step executes the instruction at IP.
// A faulted machine keeps returning its fault and does not change.
func (m *Machine) Step() error {
	if m.fault != nil {
		return m.fault
	}
	if m.Done() {
		return nil
	}

	r := m.Code[m.IP]
	switch programs.Op(r) {

	case programs.Inc:
		m.Tape[m.DP]++

	case programs.Dec:
		m.Tape[m.DP]--

	case programs.Right:
		if m.DP+1 == len(m.Tape) {
			if m.MaxTape > 0 && len(m.Tape) >= m.MaxTape {
				return m.fail(&Fault{
					Err:   ErrTapeOverflow,
					Pos:   m.IP,
					Value: m.MaxTape,
				})
			}
			m.Tape = append(m.Tape, 0)
		}
		m.DP++

	case programs.Left:
		if m.DP == 0 {
			return m.fail(&Fault{
				Err: ErrTapeUnderflow,
				Pos: m.IP,
			})
		}
		m.DP--

	case programs.LoopStart:
		if m.Tape[m.DP] == 0 {
			m.IP = m.Jumps[m.IP]
		}

	case programs.LoopEnd:
		if m.Tape[m.DP] != 0 {
			m.IP = m.Jumps[m.IP]
		}

	case programs.Emit:
		value := m.Tape[m.DP]
		if value < 1 || value > unicode.MaxRune {
			return m.fail(&Fault{
				Err:   ErrInvalidCodepoint,
				Pos:   m.IP,
				Value: value,
			})
		}
		m.Output = append(m.Output, rune(value))

	default:
		return m.fail(&Fault{
			Err:    ErrInvalidInstruction,
			Pos:    m.IP,
			Symbol: r,
		})
	}

	m.IP++
	m.Steps++
	return nil
}

func (m *Machine) fail(err error) error {
	m.fault = err
	return err
}

// String renders the tape with a caret under the data pointer.
func (m *Machine) String() string {
	var cells, caret strings.Builder
	for i, cell := range m.Tape {
		str := strconv.Itoa(cell)
		if i > 0 {
			cells.WriteByte(' ')
		}
		cells.WriteString(str)
		if i < m.DP {
			caret.WriteString(strings.Repeat(" ", len(str)+1))
		}
	}
	caret.WriteByte('^')
	return cells.String() + "\n" + caret.String()
}

func (m *Machine) Snapshot(w io.Writer) error {
	return gob.NewEncoder(w).Encode(m)
}

// Restore replaces the whole state of m, including any fault, with a snapshot.
func (m *Machine) Restore(r io.Reader) error {
	var restored Machine
	if err := gob.NewDecoder(r).Decode(&restored); err != nil {
		return err
	}
	*m = restored
	return nil
}
