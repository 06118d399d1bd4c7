package tapeconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/tapecode/configs"
	"github.com/reusee/tapecode/logs"
	"github.com/reusee/tapecode/modes"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"tapecode.cue",
	".tapecode.cue",
}

// ConfigsLoader loads config files from the working directory, the user config dir and /etc, in that precedence.
// Tests run without config files.
func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {
	if mode == modes.ModeDevelopment {
		return configs.NewLoader(nil, schema)
	}

	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")

	var paths []string
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, schema)
}
