package tagconfigs

import (
	"github.com/reusee/typeof/cmds"
	"github.com/reusee/typeof/configs"
	"github.com/reusee/typeof/logs"
)

type SpecificType bool

var _ configs.Configurable = SpecificType(false)

func (s SpecificType) ConfigExpr() string {
	return "specific_type"
}

type OriginalCase bool

var _ configs.Configurable = OriginalCase(false)

func (o OriginalCase) ConfigExpr() string {
	return "original_case"
}

var (
	specificTypeFlag = cmds.Toggle("-specific", "classify by declared type names")
	originalCaseFlag = cmds.Toggle("-original", "keep the case of type tags")
)

func (Module) SpecificType(
	loader configs.Loader,
	logger logs.Logger,
) SpecificType {
	return SpecificType(resolve(*specificTypeFlag, loader, SpecificType(false), logger))
}

func (Module) OriginalCase(
	loader configs.Loader,
	logger logs.Logger,
) OriginalCase {
	return OriginalCase(resolve(*originalCaseFlag, loader, OriginalCase(false), logger))
}

// resolve prefers the command line, then the first config file setting c, then false.
// Broken config files are logged and skipped, settings in later files are logged as shadowed.
func resolve(flag *bool, loader configs.Loader, c configs.Configurable, logger logs.Logger) (ret bool) {
	if flag != nil {
		return *flag
	}
	var from string
	for setting, err := range configs.All[bool](loader, c) {
		if err != nil {
			logger.Warn("invalid config",
				"key", c.ConfigExpr(),
				"error", err,
			)
			continue
		}
		if from != "" {
			logger.Debug("shadowed config",
				"key", c.ConfigExpr(),
				"value", setting.Value,
				"path", setting.Path,
				"by", from,
			)
			continue
		}
		ret = setting.Value
		from = setting.Path
	}
	return
}
