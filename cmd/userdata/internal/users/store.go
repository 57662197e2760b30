package users

import (
	"context"
	"crypto/rand"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/constants"
	"github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/database"
	"github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/password"
)

// queryContext bounds a single store query with the standard query timeout.
func queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, constants.QueryTimeout)
}

// Store provides database operations for users.
type Store struct {
	db database.Driver
}

// NewStore creates a new user store.
func NewStore(db database.Driver) *Store {
	return &Store{db: db}
}

// selectColumns is the projection shared by List and the lookups: the id
// followed by the fixed column order.
var selectColumns = "id, " + strings.Join(Columns, ", ")

// Create hashes plaintext, assigns a fresh ULID, and inserts the user.
// The plaintext never touches the database; only the bcrypt artifact is
// stored in the password column.
func (s *Store) Create(ctx context.Context, user *User, plaintext string) error {
	hash, err := password.Hash(plaintext)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash
	user.ID = ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`, TableUsers, selectColumns)
	if s.db.Dialect() == database.DialectPostgres {
		query = fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`, TableUsers, selectColumns)
	}

	qctx, cancel := queryContext(ctx)
	defer cancel()
	_, err = s.db.Exec(qctx, query,
		user.ID, user.Name, user.Email, user.Phone, user.SSN,
		user.PasswordHash, user.IP, user.LastLogin, user.UserAgent,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// List retrieves every user in insertion (ULID) order.
func (s *Store) List(ctx context.Context) ([]*User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id", selectColumns, TableUsers)

	qctx, cancel := queryContext(ctx)
	defer cancel()
	rows, err := s.db.Query(qctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var result []*User
	for rows.Next() {
		user := &User{}
		if err := rows.Scan(
			&user.ID, &user.Name, &user.Email, &user.Phone, &user.SSN,
			&user.PasswordHash, &user.IP, &user.LastLogin, &user.UserAgent,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		result = append(result, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return result, nil
}

// GetByEmail retrieves a user by email. Returns (nil, nil) when no user
// matches.
func (s *Store) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE email = ?", selectColumns, TableUsers)
	if s.db.Dialect() == database.DialectPostgres {
		query = fmt.Sprintf("SELECT %s FROM %s WHERE email = $1", selectColumns, TableUsers)
	}

	qctx, cancel := queryContext(ctx)
	defer cancel()

	user := &User{}
	err := s.db.QueryRow(qctx, query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.Phone, &user.SSN,
		&user.PasswordHash, &user.IP, &user.LastLogin, &user.UserAgent,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// Count returns the number of users.
func (s *Store) Count(ctx context.Context) (int, error) {
	qctx, cancel := queryContext(ctx)
	defer cancel()

	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", TableUsers)
	if err := s.db.QueryRow(qctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
