package procpool

import (
	json "github.com/goccy/go-json"
	yaml "github.com/goccy/go-yaml"
	"github.com/ygrebnov/errorc"
)

// OptionsFromJSON decodes a JSON policy document into an Options record.
// Decoding is structural only: values keep their loose types (numbers as
// float64, strings as strings, nested objects as maps) and are coerced later,
// by Resolve. Unknown keys survive decoding and are ignored at resolution.
func OptionsFromJSON(data []byte) (Options, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errorc.With(ErrInvalidOptionsDoc,
			errorc.String("format", "json"),
			errorc.String("error", err.Error()),
		)
	}
	return Options(raw), nil
}

// OptionsFromYAML decodes a YAML policy document into an Options record.
// Same contract as OptionsFromJSON.
func OptionsFromYAML(data []byte) (Options, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errorc.With(ErrInvalidOptionsDoc,
			errorc.String("format", "yaml"),
			errorc.String("error", err.Error()),
		)
	}
	return Options(raw), nil
}
