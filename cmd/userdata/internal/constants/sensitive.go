package constants

// PIIFields lists the user-data fields considered personally identifiable.
// Values of these fields are obfuscated before any log line reaches a sink.
// Used in: logging/formatter.go, audit/audit.go
// Matching is exact and case-sensitive on the field name.
var PIIFields = []string{
	"name",
	"email",
	"phone",
	"ssn",
	"password",
}

// SensitiveKeys are structured-log field names that should be masked when
// attached to a log event, to prevent accidental exposure of credentials.
// Used in: logging/logger.go for automatic field masking
var SensitiveKeys = []string{
	"password",
	"token",
	"secret",
	"api_key",
	"apikey",
	"authorization",
}

const (
	// Redaction is the placeholder written in place of a PII field value.
	// Used in: logging/formatter.go
	Redaction = "***"

	// FieldSeparator joins key=value segments in a user-data record.
	// Used in: logging/formatter.go, users/user.go
	FieldSeparator = ";"

	// MaskedValue replaces sensitive structured-log values.
	// Used in: logging/logger.go
	MaskedValue = "***REDACTED***"
)
