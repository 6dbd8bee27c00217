package tagconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/typeof/configs"
	"github.com/reusee/typeof/logs"
	"github.com/reusee/typeof/modes"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"typeof.cue",
	".typeof.cue",
}

// configDirs lists the directories searched for config files, nearest first.
func configDirs(mode modes.Mode) (dirs []string) {
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	// user and system wide configs do not apply to tests
	if mode == modes.ModeProduction {
		if configDir, err := os.UserConfigDir(); err == nil {
			dirs = append(dirs, configDir)
		}
		dirs = append(dirs, "/etc")
	}
	return
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {
	var paths []string
	for _, dir := range configDirs(mode) {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	loader := configs.NewLoader(paths, schema)
	if len(loader.Paths()) > 0 {
		logger.Info("config file",
			"paths", loader.Paths(),
		)
	}
	return loader
}
