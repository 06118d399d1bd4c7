package tapes

import (
	"context"

	"github.com/reusee/tapecode/programs"
)

type Options struct {
	// MaxSteps bounds the executed instructions, 0 for no limit.
	MaxSteps uint64
	// MaxTape caps the tape length, 0 for no cap.
	MaxTape int
	// JumpCache is optional.
	JumpCache *JumpCache
}

// Run steps the machine until it halts or faults, yielding the position of each executed instruction.
// Breaking out of the loop suspends the machine between instructions; ranging over Run again resumes it.
func (m *Machine) Run(yield func(int, error) bool) {
	for !m.Done() {
		ip := m.IP
		if err := m.Step(); err != nil {
			yield(ip, err)
			return
		}
		if !yield(ip, nil) {
			return
		}
	}
}

const ctxCheckInterval = 1024

// Execute runs program to completion and returns its output.
// A fault discards the output.
func Execute(ctx context.Context, program programs.Program, opts Options) (string, error) {
	_, output, err := execute(ctx, program, opts)
	return output, err
}

func execute(ctx context.Context, program programs.Program, opts Options) (*Machine, string, error) {
	m, err := New(program, opts)
	if err != nil {
		return nil, "", err
	}
	for _, err := range m.Run {
		if err != nil {
			return m, "", err
		}
		if opts.MaxSteps > 0 && m.Steps >= opts.MaxSteps && !m.Done() {
			return m, "", m.fail(&Fault{
				Err:   ErrStepLimit,
				Pos:   m.IP,
				Value: int(m.Steps),
			})
		}
		if m.Steps%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return m, "", err
			}
		}
	}
	return m, string(m.Output), nil
}
