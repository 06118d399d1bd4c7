package tapeconfigs

import (
	"github.com/reusee/tapecode/cmds"
	"github.com/reusee/tapecode/configs"
)

// Threshold is the largest delta emitted without a counter loop.
type Threshold int

func (Module) Threshold(
	loader configs.Loader,
) Threshold {
	return Threshold(configs.FirstOr(loader, "threshold", 12))
}

// Radius bounds the search around a delta for a balanced factorization.
type Radius int

func (Module) Radius(
	loader configs.Loader,
) Radius {
	return Radius(configs.FirstOr(loader, "radius", 2))
}

// Offset is the distance from the counter cell to the scratch cell.
type Offset int

func (Module) Offset(
	loader configs.Loader,
) Offset {
	return Offset(configs.FirstOr(loader, "offset", 1))
}

type FixedPointCleanup bool

var fixedPointFlag = cmds.Switch("-fixed-point", "collapse pointer moves until none cancel")

func (Module) FixedPointCleanup(
	loader configs.Loader,
) FixedPointCleanup {
	return FixedPointCleanup(*fixedPointFlag || configs.First[bool](loader, "fixed_point_cleanup"))
}
