package genarith

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// LoadParamsFile overlays the keys present in the TOML file at path onto params.
// Keys the file omits keep their current values; unknown keys are a *ConfigError.
func LoadParamsFile(path string, params *SimulationParams) error {
	meta, err := toml.DecodeFile(path, params)
	if err != nil {
		return fmt.Errorf("loading params from %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return &ConfigError{
			Field:  "config file " + path,
			Value:  strings.Join(keys, ", "),
			Reason: "unrecognized keys",
		}
	}

	return nil
}
