package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "userdata.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

// TestLoadDefaults verifies defaults apply when the file provides nothing.
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "# empty\n"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 5000 {
		t.Errorf("Server.Port = %d, want 5000", cfg.Server.Port)
	}
	if cfg.Database.Connection != "mysql" {
		t.Errorf("Database.Connection = %q, want mysql", cfg.Database.Connection)
	}
	if cfg.Database.User != "root" {
		t.Errorf("Database.User = %q, want root", cfg.Database.User)
	}
	if cfg.Database.Password != "" {
		t.Errorf("Database.Password = %q, want empty", cfg.Database.Password)
	}
	if cfg.Database.Host != "localhost" {
		t.Errorf("Database.Host = %q, want localhost", cfg.Database.Host)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("Logging defaults = %q/%q, want info/text", cfg.Logging.Level, cfg.Logging.Format)
	}
	if len(cfg.Auth.ExcludedPaths) == 0 {
		t.Error("Auth.ExcludedPaths defaults missing")
	}
}

// TestLoadFromYAML verifies file values override defaults.
func TestLoadFromYAML(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8080
database:
  connection: sqlite
  database: /tmp/users.db
logging:
  level: debug
  format: json
auth:
  excluded_paths:
    - /api/v1/status
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Connection != "sqlite" || cfg.Database.Database != "/tmp/users.db" {
		t.Errorf("Database = %+v", cfg.Database)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

// TestEnvironmentOverrides verifies the PERSONAL_DATA_DB_* variables take
// precedence over YAML values for the four credential settings.
func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvDBUsername, "auditor")
	t.Setenv(EnvDBPassword, "s3cret")
	t.Setenv(EnvDBHost, "db.internal")
	t.Setenv(EnvDBName, "my_db")

	path := writeConfig(t, `
database:
  user: from_yaml
  host: yaml-host
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Database.User != "auditor" {
		t.Errorf("Database.User = %q, want auditor", cfg.Database.User)
	}
	if cfg.Database.Password != "s3cret" {
		t.Errorf("Database.Password = %q, want s3cret", cfg.Database.Password)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("Database.Host = %q, want db.internal", cfg.Database.Host)
	}
	if cfg.Database.Database != "my_db" {
		t.Errorf("Database.Database = %q, want my_db", cfg.Database.Database)
	}
}

// TestLoadValidation verifies rejected configurations.
func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid port", "server:\n  port: 70000\n"},
		{"unsupported connection", "database:\n  connection: oracle\n"},
		{"invalid log level", "logging:\n  level: verbose\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Error("Load() succeeded, want validation error")
			}
		})
	}
}

// TestLoadMissingExplicitFile verifies an explicitly requested missing file errors.
func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() succeeded for a missing explicit config file")
	}
}
