package utils

import (
	"fmt"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

var (
	configFileMu     sync.RWMutex
	configFileValues = map[string]string{}
)

// LoadConfigFile reads a TOML file whose tables are flattened into environment
// variable names: `[server] port = 8081` provides SERVER_PORT. Environment
// variables keep precedence over the file.
func LoadConfigFile(path string) error {
	if path == "" {
		return nil
	}

	var raw map[string]any
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return fmt.Errorf("toml.DecodeFile error: %w", err)
	}

	values := make(map[string]string)
	flattenConfig("", raw, values)

	configFileMu.Lock()
	defer configFileMu.Unlock()
	configFileValues = values
	return nil
}

func flattenConfig(prefix string, raw map[string]any, out map[string]string) {
	for key, value := range raw {
		name := strings.ToUpper(key)
		if prefix != "" {
			name = prefix + "_" + name
		}
		switch v := value.(type) {
		case map[string]any:
			flattenConfig(name, v, out)
		default:
			out[name] = fmt.Sprintf("%v", v)
		}
	}
}

func configFileValue(name string) (string, bool) {
	configFileMu.RLock()
	defer configFileMu.RUnlock()
	v, ok := configFileValues[name]
	return v, ok && v != ""
}
