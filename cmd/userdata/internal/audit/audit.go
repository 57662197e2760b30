// Package audit dumps the user table through the redacting logger.
// Each row is rendered as a key=value record and emitted at info level;
// the logger's formatter obfuscates the PII fields before the line
// reaches any sink.
package audit

import (
	"context"
	"fmt"

	"github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/logging"
	"github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/users"
)

// Lister is the slice of the user store the auditor needs.
type Lister interface {
	List(ctx context.Context) ([]*users.User, error)
}

// Auditor fetches user rows and logs them with PII redacted.
type Auditor struct {
	store  Lister
	logger *logging.Logger
}

// New creates an Auditor.
func New(store Lister, logger *logging.Logger) *Auditor {
	return &Auditor{
		store:  store,
		logger: logger,
	}
}

// Run logs every user row and returns the number of rows emitted.
func (a *Auditor) Run(ctx context.Context) (int, error) {
	list, err := a.store.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("audit failed: %w", err)
	}

	for _, user := range list {
		a.logger.Info(user.Record())
	}

	return len(list), nil
}
