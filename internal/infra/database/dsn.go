// Package database builds the archive database connection settings from the
// app.db properties.
package database

import (
	"fmt"

	"go-forecast/pkg/resource"
)

type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string
	Schema   string
	SSLMode  string
}

func ConfigFromProperties() Config {
	return Config{
		Host:     resource.GetString("app.db.host"),
		Port:     resource.GetString("app.db.port"),
		Username: resource.GetString("app.db.username"),
		Password: resource.GetString("app.db.password"),
		Database: resource.GetString("app.db.database"),
		Schema:   resource.GetString("app.db.schema"),
		SSLMode:  resource.GetStringOrDefault("app.db.ssl-mode", "disable"),
	}
}

// DSN renders the config as a libpq keyword/value connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode, c.Schema)
}
