package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/audit"
	"github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/config"
	"github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/constants"
	"github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/database"
	"github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/logging"
	"github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/server"
	"github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/users"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "", "path to configuration file (default: /etc/userdata.conf)")
	auditMode := flag.Bool("audit", false, "dump all user records to the filtered log and exit")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logging.Init(logging.LoggerConfig{
		Level:     logging.Level(cfg.Logging.Level),
		Format:    cfg.Logging.Format,
		FilePath:  cfg.Logging.FilePath,
		PIIFields: cfg.Logging.PIIFields,
	})
	logger := logging.GetLogger()

	logConfigSummary(cfg)

	// Initialize database driver
	driver, err := database.NewDriver(database.Config{
		ConnectionString: buildConnectionString(cfg.Database),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create database driver: %v\n", err)
		os.Exit(1)
	}

	connectCtx, cancel := context.WithTimeout(context.Background(), constants.ConnectTimeout)
	if err := driver.Connect(connectCtx); err != nil {
		cancel()
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	cancel()
	defer driver.Close()

	logger.Infof("Connected to %s database", driver.Dialect())

	if err := users.EnsureSchema(context.Background(), driver); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to ensure schema: %v\n", err)
		os.Exit(1)
	}

	store := users.NewStore(driver)

	// One-shot audit dump: log every row with PII filtered, then exit.
	if *auditMode {
		count, err := audit.New(store, logger).Run(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Audit failed: %v\n", err)
			os.Exit(1)
		}
		logger.Infof("Audited %d user record(s)", count)
		return
	}

	// Create and start HTTP server
	srv := server.New(cfg, driver, store, logger, config.Version())

	if err := srv.Run(); err != nil {
		logger.ErrorWithErr("Server error", err)
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("Server stopped gracefully")
}

// buildConnectionString creates a database connection string from DatabaseConfig
func buildConnectionString(db config.DatabaseConfig) string {
	switch db.Connection {
	case "sqlite":
		return fmt.Sprintf("sqlite://%s", db.Database)
	case "postgres":
		if db.User != "" && db.Password != "" {
			return fmt.Sprintf("postgres://%s:%s@%s/%s", db.User, db.Password, db.Host, db.Database)
		}
		return fmt.Sprintf("postgres://%s/%s", db.Host, db.Database)
	case "mysql":
		if db.User != "" && db.Password != "" {
			return fmt.Sprintf("mysql://%s:%s@%s/%s", db.User, db.Password, db.Host, db.Database)
		}
		return fmt.Sprintf("mysql://%s/%s", db.Host, db.Database)
	default:
		return fmt.Sprintf("sqlite://%s", db.Database)
	}
}

// logConfigSummary logs the loaded configuration for debugging.
// Credentials never appear here.
func logConfigSummary(cfg *config.AppConfig) {
	logging.Info("=== Configuration Summary ===")
	logging.Infof("Server: %s:%d", cfg.Server.Host, cfg.Server.Port)
	logging.Infof("Database Type: %s", cfg.Database.Connection)
	logging.Infof("Database: %s", cfg.Database.Database)
	if cfg.Database.User != "" {
		logging.Infof("Database User: %s", cfg.Database.User)
	}
	if cfg.Database.Host != "" && cfg.Database.Connection != "sqlite" {
		logging.Infof("Database Host: %s", cfg.Database.Host)
	}
	logging.Infof("Log Level: %s", cfg.Logging.Level)
	logging.Infof("Auth Excluded Paths: %v", cfg.Auth.ExcludedPaths)
	logging.Info("============================")
}
