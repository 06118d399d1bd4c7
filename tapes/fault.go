package tapes

import (
	"errors"
	"fmt"
)

var (
	ErrTapeUnderflow      = errors.New("tape underflow")
	ErrTapeOverflow       = errors.New("tape overflow")
	ErrUnmatchedOpen      = errors.New("unmatched '['")
	ErrUnmatchedClose     = errors.New("unmatched ']'")
	ErrInvalidCodepoint   = errors.New("invalid codepoint")
	ErrInvalidInstruction = errors.New("invalid instruction")
	ErrStepLimit          = errors.New("step limit exceeded")
)

// Fault is an unrecoverable error of a run.
// Pos is the position of the instruction that faulted.
type Fault struct {
	Err    error
	Pos    int
	Value  int
	Symbol rune
}

var _ error = new(Fault)

func (f *Fault) Error() string {
	switch f.Err {
	case ErrInvalidCodepoint:
		return fmt.Sprintf("%s: cannot convert %d to unicode character at instruction %d", f.Err, f.Value, f.Pos)
	case ErrInvalidInstruction:
		return fmt.Sprintf("%s: unexpected token %q at index %d", f.Err, f.Symbol, f.Pos)
	case ErrTapeOverflow:
		return fmt.Sprintf("%s: tape length limit %d at instruction %d", f.Err, f.Value, f.Pos)
	case ErrStepLimit:
		return fmt.Sprintf("%s: %d steps at instruction %d", f.Err, f.Value, f.Pos)
	}
	return fmt.Sprintf("%s at instruction %d", f.Err, f.Pos)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
