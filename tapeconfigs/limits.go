package tapeconfigs

import (
	"github.com/reusee/tapecode/cmds"
	"github.com/reusee/tapecode/configs"
	"github.com/reusee/tapecode/vars"
)

// MaxSteps bounds the instructions executed in one run, 0 for no limit.
type MaxSteps uint64

var maxStepsFlag = cmds.Var[uint64]("-max-steps", "fault runs exceeding this many instructions")

func (Module) MaxSteps(
	loader configs.Loader,
) MaxSteps {
	return MaxSteps(vars.FirstNonZero(
		*maxStepsFlag,
		configs.First[uint64](loader, "max_steps"),
	))
}

// MaxTape bounds the tape length, 0 for no limit.
type MaxTape int

var maxTapeFlag = cmds.Var[int]("-max-tape", "fault runs growing the tape past this many cells")

func (Module) MaxTape(
	loader configs.Loader,
) MaxTape {
	return MaxTape(vars.FirstNonZero(
		*maxTapeFlag,
		configs.First[int](loader, "max_tape"),
	))
}

// MaxProgramLen bounds the encoded program length, 0 for no limit.
type MaxProgramLen int

var maxProgramLenFlag = cmds.Var[int]("-max-program-len", "fail encodings longer than this")

func (Module) MaxProgramLen(
	loader configs.Loader,
) MaxProgramLen {
	return MaxProgramLen(vars.FirstNonZero(
		*maxProgramLenFlag,
		configs.First[int](loader, "max_program_len"),
	))
}

type JumpCacheSize int

func (Module) JumpCacheSize(
	loader configs.Loader,
) JumpCacheSize {
	return JumpCacheSize(configs.FirstOr(loader, "jump_cache_size", 128))
}
