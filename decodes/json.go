package decodes

import "encoding/json"

// JSON decodes exactly one JSON value, trailing data is an error.
func JSON(text string) (ret any, err error) {
	if err := json.Unmarshal([]byte(text), &ret); err != nil {
		return nil, err
	}
	return ret, nil
}
