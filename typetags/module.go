package typetags

import (
	"github.com/reusee/dscope"
	"github.com/reusee/typeof/logs"
	"github.com/reusee/typeof/tagconfigs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs tagconfigs.Module
}

func (Module) Classifier(
	specificType tagconfigs.SpecificType,
	originalCase tagconfigs.OriginalCase,
	logger logs.Logger,
) *Classifier {
	logger.Debug("type classifier",
		specificType.ConfigExpr(), bool(specificType),
		originalCase.ConfigExpr(), bool(originalCase),
	)
	return NewClassifier(Config{
		SpecificType: bool(specificType),
		OriginalCase: bool(originalCase),
	})
}

// TypeOfFunc classifies with the configured flags.
type TypeOfFunc func(value any) string

func (Module) TypeOf(
	classifier *Classifier,
) TypeOfFunc {
	return func(value any) string {
		return classifier.TypeOf(value, nil, nil)
	}
}

// TypeOfWithFunc classifies with per-call flags, nil flags use the configured ones.
type TypeOfWithFunc func(value any, specificType, originalCase *bool) string

func (Module) TypeOfWith(
	classifier *Classifier,
) TypeOfWithFunc {
	return classifier.TypeOf
}
