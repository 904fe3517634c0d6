package configs

import (
	"github.com/spf13/viper"
)

// EnvConfig holds the settings read straight from the process environment.
type EnvConfig struct {
	ApplicationName    string
	LogLevel           string
	PropertiesFilePath string
	MessagesFilePath   string
}

// LoadEnv reads the environment. File paths are empty when no override is set.
func LoadEnv() *EnvConfig {
	v := viper.New()
	v.AutomaticEnv()

	return &EnvConfig{
		ApplicationName:    getStringOrDefault(v, "APPLICATION_NAME", "forecast-client"),
		LogLevel:           getStringOrDefault(v, "LOG_LEVEL", "info"),
		PropertiesFilePath: v.GetString("PROPERTIES_FILE_PATH"),
		MessagesFilePath:   v.GetString("MESSAGES_FILE_PATH"),
	}
}

func getStringOrDefault(v *viper.Viper, key, defaultValue string) string {
	value := v.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}
