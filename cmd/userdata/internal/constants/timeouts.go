package constants

import "time"

// Timeout and duration constants used throughout the application.
// These define time limits for operations to prevent indefinite blocking.
const (
	// ShutdownTimeout is the maximum time allowed for graceful shutdown.
	// Used in: server/server.go
	// Purpose: allows in-flight requests to complete before forcing exit
	ShutdownTimeout = 30 * time.Second

	// HTTPReadTimeout is the maximum duration for reading the entire request,
	// including the body.
	// Used in: server/server.go
	HTTPReadTimeout = 15 * time.Second

	// HTTPWriteTimeout is the maximum duration before timing out writes of
	// the response. It includes the time to read the request header.
	// Used in: server/server.go
	HTTPWriteTimeout = 15 * time.Second

	// HTTPIdleTimeout is the maximum amount of time to wait for the next
	// request when keep-alives are enabled.
	// Used in: server/server.go
	HTTPIdleTimeout = 60 * time.Second

	// ConnectTimeout bounds the initial database connection and ping.
	// Used in: cmd/userdata/main.go
	ConnectTimeout = 10 * time.Second

	// QueryTimeout bounds individual user-store queries.
	// Used in: audit/audit.go, server/handlers.go
	QueryTimeout = 30 * time.Second

	// SlowQueryThreshold is the duration threshold for logging slow queries.
	// Used in: logging/logger.go
	SlowQueryThreshold = 500 * time.Millisecond
)
