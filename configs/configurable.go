package configs

// Configurable is implemented by values that may be set from config files.
type Configurable interface {
	// ConfigExpr is the config path that sets the value
	ConfigExpr() string
}
