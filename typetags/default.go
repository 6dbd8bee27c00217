package typetags

var defaultClassifier = NewClassifier(Config{})

// TypeOf classifies value with the default classifier.
// flags[0] is specificType and flags[1] is originalCase; missing or nil flags use the default config.
func TypeOf(value any, flags ...*bool) string {
	var specificType, originalCase *bool
	if len(flags) > 0 {
		specificType = flags[0]
	}
	if len(flags) > 1 {
		originalCase = flags[1]
	}
	return defaultClassifier.TypeOf(value, specificType, originalCase)
}

func GetConfig() Config {
	return defaultClassifier.GetConfig()
}

func SetConfig(partial any) {
	defaultClassifier.SetConfig(partial)
}

func Bool(b bool) *bool {
	return &b
}
