// Package errors provides centralized error handling and HTTP error responses.
// It defines standard error codes, error types, and middleware for consistent
// error handling across the application.
package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/constants"
	"github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/logging"
)

// ErrorCode represents a standard error code
type ErrorCode string

const (
	// Request errors
	CodeBadRequest       ErrorCode = "BAD_REQUEST"
	CodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"

	// Authentication and authorization errors
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeForbidden    ErrorCode = "FORBIDDEN"

	// Resource errors
	CodeNotFound ErrorCode = "NOT_FOUND"
	CodeConflict ErrorCode = "CONFLICT"

	// Server errors
	CodeInternalError      ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError      ErrorCode = "DATABASE_ERROR"
	CodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
)

// ErrorResponse represents the standard error response format
type ErrorResponse struct {
	Error     string    `json:"error"`
	Code      int       `json:"code"`
	ErrorCode ErrorCode `json:"error_code,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
}

// APIError represents an application error
type APIError struct {
	Message    string
	StatusCode int
	ErrorCode  ErrorCode
	Err        error // Wrapped error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *APIError) Unwrap() error {
	return e.Err
}

// Wrap wraps an error with additional context
func (e *APIError) Wrap(err error) *APIError {
	e.Err = err
	return e
}

// NewAPIError creates a new API error
func NewAPIError(statusCode int, errorCode ErrorCode, message string) *APIError {
	return &APIError{
		Message:    message,
		StatusCode: statusCode,
		ErrorCode:  errorCode,
	}
}

// NewBadRequestError creates a 400 Bad Request error
func NewBadRequestError(message string) *APIError {
	return NewAPIError(http.StatusBadRequest, CodeBadRequest, message)
}

// NewUnauthorizedError creates a 401 Unauthorized error
func NewUnauthorizedError(message string) *APIError {
	return NewAPIError(http.StatusUnauthorized, CodeUnauthorized, message)
}

// NewForbiddenError creates a 403 Forbidden error
func NewForbiddenError(message string) *APIError {
	return NewAPIError(http.StatusForbidden, CodeForbidden, message)
}

// NewNotFoundError creates a 404 Not Found error
func NewNotFoundError(resource string) *APIError {
	return NewAPIError(http.StatusNotFound, CodeNotFound, fmt.Sprintf("%s not found", resource))
}

// NewInternalError creates a 500 Internal Server Error
func NewInternalError(message string) *APIError {
	return NewAPIError(http.StatusInternalServerError, CodeInternalError, message)
}

// NewDatabaseError creates a 500 Database Error
func NewDatabaseError(err error) *APIError {
	return NewAPIError(http.StatusInternalServerError, CodeDatabaseError, "Database error").Wrap(err)
}

// NewServiceUnavailableError creates a 503 Service Unavailable error
func NewServiceUnavailableError(message string) *APIError {
	return NewAPIError(http.StatusServiceUnavailable, CodeServiceUnavailable, message)
}

// ErrorHandlerConfig holds configuration for error handling
type ErrorHandlerConfig struct {
	// ShowInternalErrors shows detailed error information in responses.
	// Should be false in production.
	ShowInternalErrors bool

	// Logger receives error and panic logs (default: global logger)
	Logger *logging.Logger
}

// ErrorHandler provides error handling middleware and utilities
type ErrorHandler struct {
	config ErrorHandlerConfig
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(config ErrorHandlerConfig) *ErrorHandler {
	if config.Logger == nil {
		config.Logger = logging.GetLogger()
	}
	return &ErrorHandler{
		config: config,
	}
}

// RecoveryMiddleware catches panics and converts them to 500 errors
func (h *ErrorHandler) RecoveryMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				requestID := logging.GetRequestID(r.Context())

				h.config.Logger.WithFields(map[string]any{
					"request_id": requestID,
					"stack":      string(debug.Stack()),
				}).Errorf("panic recovered: %v", rec)

				message := "Internal server error"
				if h.config.ShowInternalErrors {
					message = fmt.Sprintf("Internal server error: %v", rec)
				}

				h.WriteError(w, r, NewInternalError(message))
			}
		}()

		next(w, r)
	}
}

// WriteError writes an error response
func (h *ErrorHandler) WriteError(w http.ResponseWriter, r *http.Request, err *APIError) {
	requestID := logging.GetRequestID(r.Context())

	response := ErrorResponse{
		Error:     err.Message,
		Code:      err.StatusCode,
		ErrorCode: err.ErrorCode,
		RequestID: requestID,
	}

	logger := h.config.Logger.WithField("request_id", requestID)
	if err.StatusCode >= 500 {
		logger.Errorf("%d %s: %s", err.StatusCode, err.ErrorCode, err.Error())
	} else {
		logger.Warnf("%d %s: %s", err.StatusCode, err.ErrorCode, err.Message)
	}

	w.Header().Set(constants.HeaderContentType, constants.MIMEApplicationJSON)
	w.WriteHeader(err.StatusCode)
	json.NewEncoder(w).Encode(response)
}

// WriteErrorFromError converts a standard error to an API error response
func (h *ErrorHandler) WriteErrorFromError(w http.ResponseWriter, r *http.Request, err error) {
	if apiErr, ok := err.(*APIError); ok {
		h.WriteError(w, r, apiErr)
		return
	}

	apiErr := NewInternalError("An unexpected error occurred")
	if h.config.ShowInternalErrors {
		apiErr = NewInternalError(err.Error())
	}
	apiErr.Err = err
	h.WriteError(w, r, apiErr)
}

// MapDatabaseError maps database errors to appropriate API errors
func MapDatabaseError(err error) *APIError {
	errStr := err.Error()

	if containsAny(errStr, constants.DuplicateKeyPatterns) {
		return NewAPIError(http.StatusConflict, CodeConflict, "Resource already exists")
	}

	if containsAny(errStr, constants.ConnectionErrorPatterns) {
		return NewServiceUnavailableError("Database unavailable")
	}

	return NewDatabaseError(err)
}

// containsAny checks if any of the patterns in the slice are in the string
func containsAny(s string, patterns []string) bool {
	for _, pattern := range patterns {
		if strings.Contains(s, pattern) {
			return true
		}
	}
	return false
}
