package decodes

import (
	"gopkg.in/yaml.v3"
)

func YAML(text string) (ret any, err error) {
	if err := yaml.Unmarshal([]byte(text), &ret); err != nil {
		return nil, err
	}
	return ret, nil
}
