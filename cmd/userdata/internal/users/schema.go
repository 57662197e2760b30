package users

import (
	"context"
	"fmt"

	"github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/database"
)

// TableUsers is the name of the user-data table.
const TableUsers = "users"

// SchemaSQL returns the SQL statements to create the users table for the
// given dialect.
func SchemaSQL(dialect database.DialectType) []string {
	switch dialect {
	case database.DialectPostgres:
		return []string{
			`CREATE TABLE IF NOT EXISTS ` + TableUsers + ` (
				id CHAR(26) PRIMARY KEY,
				name TEXT NOT NULL,
				email TEXT NOT NULL UNIQUE,
				phone TEXT NOT NULL DEFAULT '',
				ssn TEXT NOT NULL DEFAULT '',
				password TEXT NOT NULL,
				ip TEXT NOT NULL DEFAULT '',
				last_login TEXT NOT NULL DEFAULT '',
				user_agent TEXT NOT NULL DEFAULT ''
			)`,
			`CREATE INDEX IF NOT EXISTS idx_users_email ON ` + TableUsers + `(email)`,
		}
	case database.DialectMySQL:
		return []string{
			`CREATE TABLE IF NOT EXISTS ` + TableUsers + ` (
				id CHAR(26) PRIMARY KEY,
				name VARCHAR(255) NOT NULL,
				email VARCHAR(255) NOT NULL UNIQUE,
				phone VARCHAR(64) NOT NULL DEFAULT '',
				ssn VARCHAR(64) NOT NULL DEFAULT '',
				password VARCHAR(255) NOT NULL,
				ip VARCHAR(64) NOT NULL DEFAULT '',
				last_login VARCHAR(64) NOT NULL DEFAULT '',
				user_agent VARCHAR(512) NOT NULL DEFAULT ''
			)`,
		}
	default:
		return []string{
			`CREATE TABLE IF NOT EXISTS ` + TableUsers + ` (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				email TEXT NOT NULL UNIQUE,
				phone TEXT NOT NULL DEFAULT '',
				ssn TEXT NOT NULL DEFAULT '',
				password TEXT NOT NULL,
				ip TEXT NOT NULL DEFAULT '',
				last_login TEXT NOT NULL DEFAULT '',
				user_agent TEXT NOT NULL DEFAULT ''
			)`,
			`CREATE INDEX IF NOT EXISTS idx_users_email ON ` + TableUsers + `(email)`,
		}
	}
}

// EnsureSchema creates the users table if it does not exist.
func EnsureSchema(ctx context.Context, db database.Driver) error {
	for _, stmt := range SchemaSQL(db.Dialect()) {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to initialize users schema: %w", err)
		}
	}
	return nil
}
