package storages

import (
	"context"

	"github.com/reusee/dscope"
	"github.com/reusee/tapecode/logs"
	"github.com/reusee/tapecode/tapeconfigs"
)

type Module struct {
	dscope.Module
	Configs tapeconfigs.Module
	Logs    logs.Module
}

func (Module) Library(
	path tapeconfigs.DBPath,
	logger logs.Logger,
) *Library {
	db, err := Open(context.Background(), string(path))
	if err != nil {
		panic(err)
	}
	logger.Debug("open library",
		"path", path,
	)
	return NewLibrary(db)
}
