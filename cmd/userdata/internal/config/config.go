// Package config provides configuration management for the user-data service.
// It reads an optional YAML file with centralized defaults, and binds the four
// database credential values to the PERSONAL_DATA_DB_* environment variables.
// The resulting struct is built once in main and passed to collaborators; no
// package reads configuration from global state.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

const (
	// VersionMajor is the major version number
	VersionMajor = 1
	// VersionMinor is the minor version number
	VersionMinor = 0
)

// Version returns the version string in format {major}.{minor}
func Version() string {
	return fmt.Sprintf("%d.%d", VersionMajor, VersionMinor)
}

// Environment variable names for database credentials. These match the
// deployment convention for this service and take precedence over the
// YAML file values.
const (
	EnvDBUsername = "PERSONAL_DATA_DB_USERNAME"
	EnvDBPassword = "PERSONAL_DATA_DB_PASSWORD"
	EnvDBHost     = "PERSONAL_DATA_DB_HOST"
	EnvDBName     = "PERSONAL_DATA_DB_NAME"
)

// Defaults contains all default configuration values
// centralized in one place to avoid hardcoded literals
var Defaults = struct {
	Server struct {
		Port int
		Host string
	}
	Database struct {
		Connection string
		Database   string
		User       string
		Password   string
		Host       string
	}
	Logging struct {
		Level  string
		Format string
	}
	Auth struct {
		ExcludedPaths []string
	}
	ConfigPath string
}{
	Server: struct {
		Port int
		Host string
	}{
		Port: 5000,
		Host: "0.0.0.0",
	},
	Database: struct {
		Connection string
		Database   string
		User       string
		Password   string
		Host       string
	}{
		Connection: "mysql",
		Database:   "",
		User:       "root",
		Password:   "",
		Host:       "localhost",
	},
	Logging: struct {
		Level  string
		Format string
	}{
		Level:  "info",
		Format: "text",
	},
	Auth: struct {
		ExcludedPaths []string
	}{
		ExcludedPaths: []string{
			"/health",
			"/api/v1/status",
		},
	},
	ConfigPath: "/etc/userdata.conf",
}

// AppConfig holds the application configuration.
// It is designed to be immutable after initialization.
type AppConfig struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Host string `mapstructure:"host"`
}

// DatabaseConfig holds database connection configuration.
type DatabaseConfig struct {
	Connection string `mapstructure:"connection"` // database type: mysql, postgres, sqlite
	Database   string `mapstructure:"database"`   // database file/name
	User       string `mapstructure:"user"`       // database user
	Password   string `mapstructure:"password"`   // database password
	Host       string `mapstructure:"host"`       // database host
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level     string   `mapstructure:"level"`      // minimum level: debug, info, warn, error
	Format    string   `mapstructure:"format"`     // output format: text, json, console
	FilePath  string   `mapstructure:"file_path"`  // optional log file path
	PIIFields []string `mapstructure:"pii_fields"` // overrides the default PII field set when non-empty
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	// ExcludedPaths bypass Basic authentication (slash-tolerant exact match).
	ExcludedPaths []string `mapstructure:"excluded_paths"`
}

// Load initializes and loads the application configuration.
// It reads from an optional YAML file, then applies PERSONAL_DATA_DB_*
// environment overrides for the database credentials.
func Load(configPath string) (*AppConfig, error) {
	v := viper.New()

	// Set default values from centralized Defaults struct
	v.SetDefault("server.port", Defaults.Server.Port)
	v.SetDefault("server.host", Defaults.Server.Host)
	v.SetDefault("database.connection", Defaults.Database.Connection)
	v.SetDefault("database.database", Defaults.Database.Database)
	v.SetDefault("database.user", Defaults.Database.User)
	v.SetDefault("database.password", Defaults.Database.Password)
	v.SetDefault("database.host", Defaults.Database.Host)
	v.SetDefault("logging.level", Defaults.Logging.Level)
	v.SetDefault("logging.format", Defaults.Logging.Format)
	v.SetDefault("auth.excluded_paths", Defaults.Auth.ExcludedPaths)

	// Environment overrides for the database credentials only.
	v.BindEnv("database.user", EnvDBUsername)
	v.BindEnv("database.password", EnvDBPassword)
	v.BindEnv("database.host", EnvDBHost)
	v.BindEnv("database.database", EnvDBName)

	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(Defaults.ConfigPath)
	}

	// Read config file (optional - continue if the default file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		// If a specific config file was requested, any failure is an error.
		if configPath != "" {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
		// Default path missing is fine; a malformed file is not.
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// validate checks that required configuration fields are present.
func validate(cfg *AppConfig) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", cfg.Server.Port)
	}

	switch cfg.Database.Connection {
	case "mysql", "postgres", "sqlite":
	case "":
		cfg.Database.Connection = Defaults.Database.Connection
	default:
		return fmt.Errorf("unsupported database connection type: %s", cfg.Database.Connection)
	}

	if cfg.Database.Host == "" {
		cfg.Database.Host = Defaults.Database.Host
	}
	if cfg.Database.User == "" {
		cfg.Database.User = Defaults.Database.User
	}

	switch cfg.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = Defaults.Logging.Level
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = Defaults.Logging.Format
	}

	if len(cfg.Auth.ExcludedPaths) == 0 {
		cfg.Auth.ExcludedPaths = append([]string(nil), Defaults.Auth.ExcludedPaths...)
	}

	return nil
}
