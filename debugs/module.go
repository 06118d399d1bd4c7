package debugs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tapecode/cmds"
	"github.com/reusee/tapecode/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

// Tapping reports whether faults should open a REPL.
type Tapping bool

var tapFlag = cmds.Switch("-tap", "open a starlark REPL on faults")

func (Module) Tapping() Tapping {
	return Tapping(*tapFlag)
}
