package encoders

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tapecode/logs"
	"github.com/reusee/tapecode/programs"
	"github.com/reusee/tapecode/tapeconfigs"
)

type Module struct {
	dscope.Module
	Configs tapeconfigs.Module
	Logs    logs.Module
}

func (Module) Options(
	offset tapeconfigs.Offset,
	threshold tapeconfigs.Threshold,
	radius tapeconfigs.Radius,
	fixedPoint tapeconfigs.FixedPointCleanup,
	maxLen tapeconfigs.MaxProgramLen,
) Options {
	return Options{
		Offset:        int(offset),
		Threshold:     int(threshold),
		Radius:        int(radius),
		FixedPoint:    bool(fixedPoint),
		MaxProgramLen: int(maxLen),
	}
}

type EncodeFunc func(text string) (programs.Program, error)

func (Module) Encode(
	opts Options,
	logger logs.Logger,
) EncodeFunc {
	encoder := Encoder{
		Options: opts,
	}
	return func(text string) (programs.Program, error) {
		program, err := encoder.Encode(text)
		if err != nil {
			return "", err
		}
		logger.Debug("encoded",
			"runes", len(Codepoints(text))-1,
			"instructions", program.Len(),
		)
		return program, nil
	}
}
