package resource

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	mu         sync.RWMutex
	properties = viper.New()
	envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)
)

// Load reads YAML properties, replacing any previously loaded ones.
func Load(data []byte) error {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("fail to read properties: %w", err)
	}

	resolved := viper.New()
	parsePropertiesMap("", v.AllSettings(), resolved)

	mu.Lock()
	properties = resolved
	mu.Unlock()
	return nil
}

// Merge reads YAML properties on top of the loaded ones. Used for override files.
func Merge(data []byte) error {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("fail to read properties: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	parsePropertiesMap("", v.AllSettings(), properties)
	return nil
}

// LoadFile merges the YAML properties file at path on top of the loaded ones.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("fail to read properties file %s: %w", path, err)
	}
	return Merge(data)
}

// parsePropertiesMap flattens the YAML tree, resolving ${ENV:default} placeholders in strings
func parsePropertiesMap(prefix string, data map[string]any, result *viper.Viper) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result.Set(fullKey, resolveEnvVariable(v))
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		default:
			result.Set(fullKey, v)
		}
	}
}

// resolveEnvVariable replaces ${NAME} and ${NAME:default} with the environment value.
// Unset variables without a default resolve to an empty string.
func resolveEnvVariable(value string) string {
	return envPattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := envPattern.FindStringSubmatch(match)
		if envValue, exists := os.LookupEnv(groups[1]); exists {
			return envValue
		}
		return groups[2]
	})
}

func get() *viper.Viper {
	mu.RLock()
	defer mu.RUnlock()
	return properties
}

func Get(key string) any {
	return get().Get(key)
}

func IsSet(key string) bool {
	return get().IsSet(key)
}

func GetString(key string) string {
	return get().GetString(key)
}

// GetStringOrDefault returns defaultValue when key is missing or empty.
func GetStringOrDefault(key, defaultValue string) string {
	if value := get().GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func GetBool(key string) bool {
	return get().GetBool(key)
}

func GetDuration(key string) time.Duration {
	return get().GetDuration(key)
}

func GetInt(key string) int {
	return get().GetInt(key)
}

func GetStringSlice(key string) []string {
	return get().GetStringSlice(key)
}
