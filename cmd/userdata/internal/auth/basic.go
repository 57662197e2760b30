// Package auth implements HTTP Basic authentication against the user store.
// It covers path exclusion rules, Authorization header parsing, base64
// credential decoding, and bcrypt verification of the candidate password.
package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/constants"
	"github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/password"
	"github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/users"
)

var (
	// ErrMissingAuthorization indicates the request carries no
	// Authorization header.
	ErrMissingAuthorization = errors.New("missing authorization header")

	// ErrInvalidScheme indicates the Authorization header does not use the
	// Basic scheme.
	ErrInvalidScheme = errors.New("authorization header is not Basic")

	// ErrInvalidBase64 indicates the credential payload is not valid base64
	// or does not decode to UTF-8 text.
	ErrInvalidBase64 = errors.New("invalid base64 credential payload")

	// ErrMalformedCredentials indicates the decoded payload has no colon
	// separating user and password.
	ErrMalformedCredentials = errors.New("malformed credentials")

	// ErrInvalidCredentials indicates the credentials do not match any user.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// RequireAuth reports whether path needs authentication given the excluded
// paths. Matching is exact but tolerant of a missing trailing slash on
// either side. An empty path or an empty exclusion list always requires
// authentication.
func RequireAuth(path string, excludedPaths []string) bool {
	if path == "" || len(excludedPaths) == 0 {
		return true
	}

	if !strings.HasSuffix(path, "/") {
		path += "/"
	}

	for _, excluded := range excludedPaths {
		if excluded == "" {
			continue
		}
		if !strings.HasSuffix(excluded, "/") {
			excluded += "/"
		}
		if path == excluded {
			return false
		}
	}

	return true
}

// AuthorizationHeader returns the value of the request's Authorization
// header, or the empty string when the request is nil or has none.
func AuthorizationHeader(r *http.Request) string {
	if r == nil {
		return ""
	}
	return r.Header.Get(constants.HeaderAuthorization)
}

// ExtractBase64AuthorizationHeader returns the base64 portion of a Basic
// Authorization header.
func ExtractBase64AuthorizationHeader(header string) (string, error) {
	if header == "" {
		return "", ErrMissingAuthorization
	}

	prefix := constants.AuthSchemeBasic + " "
	if !strings.HasPrefix(header, prefix) {
		return "", ErrInvalidScheme
	}

	return header[len(prefix):], nil
}

// DecodeBase64AuthorizationHeader decodes the base64 credential payload to
// its UTF-8 text form.
func DecodeBase64AuthorizationHeader(encoded string) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}
	if !utf8.Valid(decoded) {
		return "", fmt.Errorf("%w: payload is not UTF-8", ErrInvalidBase64)
	}
	return string(decoded), nil
}

// ExtractUserCredentials splits a decoded payload into user email and
// password. Only the first colon separates the two, so passwords may
// themselves contain colons.
func ExtractUserCredentials(decoded string) (email, pwd string, err error) {
	email, pwd, found := strings.Cut(decoded, ":")
	if !found {
		return "", "", ErrMalformedCredentials
	}
	return email, pwd, nil
}

// ParseCredentials runs the full header pipeline: extract, decode, split.
func ParseCredentials(header string) (email, pwd string, err error) {
	payload, err := ExtractBase64AuthorizationHeader(header)
	if err != nil {
		return "", "", err
	}
	decoded, err := DecodeBase64AuthorizationHeader(payload)
	if err != nil {
		return "", "", err
	}
	return ExtractUserCredentials(decoded)
}

// UserStore is the lookup surface the authenticator needs.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*users.User, error)
}

// BasicAuth authenticates requests against the user store.
type BasicAuth struct {
	store UserStore
}

// NewBasicAuth creates a BasicAuth backed by the given store.
func NewBasicAuth(store UserStore) *BasicAuth {
	return &BasicAuth{store: store}
}

// CurrentUser resolves the request's Basic credentials to a stored user.
// Header problems return the parse error; unknown users and wrong passwords
// both return ErrInvalidCredentials so callers cannot distinguish the two.
func (b *BasicAuth) CurrentUser(ctx context.Context, r *http.Request) (*users.User, error) {
	email, candidate, err := ParseCredentials(AuthorizationHeader(r))
	if err != nil {
		return nil, err
	}

	user, err := b.store.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	ok, err := password.Verify(user.PasswordHash, candidate)
	if err != nil {
		// A stored artifact that fails to parse is a data problem, not an
		// authentication decision; surface it.
		return nil, fmt.Errorf("stored credential unreadable: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
