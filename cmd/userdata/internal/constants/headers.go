// Package constants provides centralized constant definitions for the
// user-data service. Hardcoded values reused across the codebase belong
// here to keep naming consistent between components.
package constants

// HTTP header names used throughout the application.
const (
	// HeaderRequestID is the HTTP header used for request tracking and correlation.
	// Used in: errors/errors.go, logging/logger.go
	HeaderRequestID = "X-Request-ID"

	// HeaderAuthorization is the standard HTTP Authorization header.
	// Used in: auth/basic.go
	// Purpose: carries Basic credentials for authentication
	HeaderAuthorization = "Authorization"

	// HeaderContentType is the standard HTTP Content-Type header.
	HeaderContentType = "Content-Type"

	// HeaderWWWAuthenticate is sent with 401 responses to request credentials.
	// Used in: auth/middleware.go
	HeaderWWWAuthenticate = "WWW-Authenticate"
)

// MIME types used in HTTP responses.
const (
	// MIMEApplicationJSON is the MIME type for JSON responses.
	MIMEApplicationJSON = "application/json"

	// MIMETextPlain is the MIME type for plain text responses.
	MIMETextPlain = "text/plain; charset=utf-8"
)

// Authentication schemes and prefixes.
const (
	// AuthSchemeBasic is the authentication scheme for Basic credentials.
	// Format: "Basic <base64(user:password)>" in the Authorization header
	AuthSchemeBasic = "Basic"

	// BasicRealm is the realm announced in WWW-Authenticate challenges.
	BasicRealm = `Basic realm="user-data"`
)
