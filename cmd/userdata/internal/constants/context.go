package constants

// Context keys for storing and retrieving values from request contexts.
const (
	// ContextKeyRequestID is the context key for storing request IDs.
	// Used in: errors/errors.go, logging/logger.go
	ContextKeyRequestID = "request_id"

	// ContextKeyUser is the context key for the authenticated user.
	// Used in: auth/middleware.go, server/handlers.go
	// Purpose: passing the verified user through the middleware chain
	ContextKeyUser = "current_user"
)
