package constants

// Database error detection patterns, matched against driver error messages
// to classify failures across the supported dialects.
// Used in: errors/errors.go
var (
	// DuplicateKeyPatterns indicate a duplicate key or unique constraint
	// violation across different databases.
	DuplicateKeyPatterns = []string{
		"duplicate",
		"unique constraint",
		"UNIQUE constraint",
	}

	// ConnectionErrorPatterns indicate network or connection-related
	// database errors.
	ConnectionErrorPatterns = []string{
		"connection refused",
		"no such host",
		"timeout",
	}
)
