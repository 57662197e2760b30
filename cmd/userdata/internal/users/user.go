// Package users provides the user model and database access for the
// personal-data store. Rows carry PII and must only reach log sinks through
// the redacting formatter.
package users

import (
	"strings"

	"github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/constants"
)

// Columns lists the user-data fields in their externally defined order.
// Record rendering and SELECT statements both follow this order.
var Columns = []string{
	"name",
	"email",
	"phone",
	"ssn",
	"password",
	"ip",
	"last_login",
	"user_agent",
}

// User represents one row of the users table.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	SSN          string `json:"ssn"`
	PasswordHash string `json:"-"`
	IP           string `json:"ip"`
	LastLogin    string `json:"last_login"`
	UserAgent    string `json:"user_agent"`
}

// Record renders the row as key=value segments joined by the field
// separator, in the fixed column order, with a trailing separator:
//
//	name=...;email=...;phone=...;ssn=...;password=...;ip=...;last_login=...;user_agent=...;
//
// The output contains raw PII, including the password hash; it is meant to
// be passed to a redacting logger, never to a sink directly.
func (u *User) Record() string {
	values := []string{
		u.Name,
		u.Email,
		u.Phone,
		u.SSN,
		u.PasswordHash,
		u.IP,
		u.LastLogin,
		u.UserAgent,
	}

	var b strings.Builder
	for i, column := range Columns {
		b.WriteString(column)
		b.WriteString("=")
		b.WriteString(values[i])
		b.WriteString(constants.FieldSeparator)
	}
	return b.String()
}
