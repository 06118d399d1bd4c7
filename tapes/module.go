package tapes

import (
	"context"

	"github.com/reusee/dscope"
	"github.com/reusee/tapecode/debugs"
	"github.com/reusee/tapecode/logs"
	"github.com/reusee/tapecode/programs"
	"github.com/reusee/tapecode/tapeconfigs"
)

type Module struct {
	dscope.Module
	Configs tapeconfigs.Module
	Logs    logs.Module
	Debugs  debugs.Module
}

func (Module) JumpCache(
	size tapeconfigs.JumpCacheSize,
) *JumpCache {
	cache, err := NewJumpCache(int(size))
	if err != nil {
		panic(err)
	}
	return cache
}

func (Module) Options(
	maxSteps tapeconfigs.MaxSteps,
	maxTape tapeconfigs.MaxTape,
	cache *JumpCache,
) Options {
	return Options{
		MaxSteps:  uint64(maxSteps),
		MaxTape:   int(maxTape),
		JumpCache: cache,
	}
}

type ExecuteFunc func(ctx context.Context, program programs.Program) (string, error)

func (Module) Execute(
	opts Options,
	logger logs.Logger,
	newSpan logs.NewSpan,
	tapping debugs.Tapping,
	tap debugs.Tap,
) ExecuteFunc {
	return func(ctx context.Context, program programs.Program) (string, error) {
		ctx, _ = newSpan(ctx, "run")
		m, output, err := execute(ctx, program, opts)
		if err != nil {
			logger.WarnContext(ctx, "run failed",
				"error", err,
			)
			if m != nil && tapping {
				tap(ctx, "fault", map[string]any{
					"machine": m,
					"fault":   err.Error(),
					"dump":    m.String,
				})
			}
			return "", logs.WrapSpan(ctx, err)
		}
		logger.DebugContext(ctx, "run done",
			"steps", m.Steps,
			"tape", len(m.Tape),
			"output", len(m.Output),
		)
		return output, nil
	}
}
