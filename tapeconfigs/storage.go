package tapeconfigs

import (
	"github.com/reusee/tapecode/cmds"
	"github.com/reusee/tapecode/configs"
	"github.com/reusee/tapecode/vars"
)

// DBPath is the sqlite data source of the program library.
type DBPath string

var dbFlag = cmds.Var[string]("-db", "sqlite file of the program library")

func (Module) DBPath(
	loader configs.Loader,
) DBPath {
	return DBPath(vars.FirstNonZero(
		*dbFlag,
		configs.First[string](loader, "db"),
		":memory:",
	))
}
