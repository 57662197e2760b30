// Package logging provides structured logging with zerolog.
// It supports text, JSON, and console formats, log levels, file output,
// request ID tracking, and automatic redaction of PII field values in
// log messages before they reach any sink.
package logging

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/constants"
	"github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/redact"
)

// Level represents logging levels
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// LoggerConfig holds configuration for the logger
type LoggerConfig struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level Level

	// Format is the output format (text, json, or console)
	Format string

	// Output is the writer for logs (default: os.Stdout)
	Output io.Writer

	// FilePath is the path to the log file (if specified, Output is ignored)
	FilePath string

	// ServiceName is the tag shown in brackets at the start of text lines
	ServiceName string

	// Name is the logger name shown in text lines (default: user_data)
	Name string

	// PIIFields are field names whose values are redacted in log messages.
	// Defaults to constants.PIIFields.
	PIIFields []string

	// Redaction replaces PII field values (default: constants.Redaction)
	Redaction string

	// Separator joins key=value segments in records (default: constants.FieldSeparator)
	Separator string

	// SensitiveKeys are structured-field names masked when attached via
	// WithField/WithFields, merged with constants.SensitiveKeys.
	SensitiveKeys []string

	// SlowQueryThreshold is the duration after which a query is considered slow
	SlowQueryThreshold time.Duration
}

// Logger wraps zerolog for structured logging with PII redaction.
type Logger struct {
	logger        zerolog.Logger
	config        LoggerConfig
	filter        *redact.Filter
	sensitiveKeys map[string]bool
}

// NewLogger creates a new structured logger. The redaction policy (field
// set, placeholder, separator) is bound here and applies to every message
// the logger emits, in every output format.
func NewLogger(config LoggerConfig) *Logger {
	var output io.Writer

	if config.FilePath != "" {
		dir := filepath.Dir(config.FilePath)
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create log directory %s: %v\n", dir, err)
			output = os.Stdout
		} else {
			file, err := os.OpenFile(config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, constants.FilePermissions)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to open log file %s: %v\n", config.FilePath, err)
				output = os.Stdout
			} else {
				output = file
			}
		}
	} else if config.Output != nil {
		output = config.Output
	} else {
		output = os.Stdout
	}

	if config.Level == "" {
		config.Level = LevelInfo
	}
	if config.ServiceName == "" {
		config.ServiceName = "USERDATA"
	}
	if config.Name == "" {
		config.Name = "user_data"
	}
	if config.PIIFields == nil {
		config.PIIFields = constants.PIIFields
	}
	if config.Redaction == "" {
		config.Redaction = constants.Redaction
	}
	if config.Separator == "" {
		config.Separator = constants.FieldSeparator
	}
	if config.SlowQueryThreshold == 0 {
		config.SlowQueryThreshold = constants.SlowQueryThreshold
	}

	filter := redact.NewFilter(config.PIIFields, config.Redaction, config.Separator)

	// Set zerolog level
	var zeroLevel zerolog.Level
	switch config.Level {
	case LevelDebug:
		zeroLevel = zerolog.DebugLevel
	case LevelInfo:
		zeroLevel = zerolog.InfoLevel
	case LevelWarn:
		zeroLevel = zerolog.WarnLevel
	case LevelError:
		zeroLevel = zerolog.ErrorLevel
	default:
		zeroLevel = zerolog.InfoLevel
	}

	// Configure output format. Every branch routes the event through the
	// redaction filter before it reaches the sink.
	var sink io.Writer
	switch config.Format {
	case "json":
		sink = &piiWriter{out: output, filter: filter}
	case "console":
		consoleOut := zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}
		sink = &piiWriter{out: consoleOut, filter: filter}
	default:
		// Default text format: [SERVICE] logger LEVEL TIMESTAMP: MESSAGE
		sink = &textWriter{
			out:     output,
			service: config.ServiceName,
			name:    config.Name,
			filter:  filter,
		}
	}

	logger := zerolog.New(sink).Level(zeroLevel).With().
		Timestamp().
		Str("logger", config.Name).
		Logger()

	// Build sensitive key map (case-insensitive)
	sensitiveKeys := make(map[string]bool)
	for _, key := range config.SensitiveKeys {
		sensitiveKeys[strings.ToLower(key)] = true
	}
	for _, key := range constants.SensitiveKeys {
		sensitiveKeys[key] = true
	}

	return &Logger{
		logger:        logger,
		config:        config,
		filter:        filter,
		sensitiveKeys: sensitiveKeys,
	}
}

// WithContext returns a logger with context fields
func (l *Logger) WithContext(ctx context.Context) *Logger {
	newLogger := *l

	if requestID := GetRequestID(ctx); requestID != "" {
		newLogger.logger = l.logger.With().Str(constants.ContextKeyRequestID, requestID).Logger()
	}

	return &newLogger
}

// WithField returns a logger with an additional field
func (l *Logger) WithField(key string, value any) *Logger {
	newLogger := *l
	newLogger.logger = l.logger.With().Interface(key, l.maskSensitive(key, value)).Logger()
	return &newLogger
}

// WithFields returns a logger with additional fields
func (l *Logger) WithFields(fields map[string]any) *Logger {
	newLogger := *l
	ctx := l.logger.With()
	for key, value := range fields {
		ctx = ctx.Interface(key, l.maskSensitive(key, value))
	}
	newLogger.logger = ctx.Logger()
	return &newLogger
}

// maskSensitive masks sensitive field values (case-insensitive)
func (l *Logger) maskSensitive(key string, value any) any {
	if l.sensitiveKeys[strings.ToLower(key)] {
		return constants.MaskedValue
	}
	return value
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) {
	l.logger.Debug().Msg(msg)
}

// Debugf logs a formatted debug message
func (l *Logger) Debugf(format string, args ...any) {
	l.logger.Debug().Msgf(format, args...)
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	l.logger.Info().Msg(msg)
}

// Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...any) {
	l.logger.Info().Msgf(format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string) {
	l.logger.Warn().Msg(msg)
}

// Warnf logs a formatted warning message
func (l *Logger) Warnf(format string, args ...any) {
	l.logger.Warn().Msgf(format, args...)
}

// Error logs an error message
func (l *Logger) Error(msg string) {
	l.logger.Error().Msg(msg)
}

// Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...any) {
	l.logger.Error().Msgf(format, args...)
}

// ErrorWithErr logs an error with the error object
func (l *Logger) ErrorWithErr(msg string, err error) {
	l.logger.Error().Err(err).Msg(msg)
}

// LogSlowQuery logs a slow query warning
func (l *Logger) LogSlowQuery(query string, duration time.Duration, args ...any) {
	if duration >= l.config.SlowQueryThreshold {
		l.logger.Warn().
			Str("query", query).
			Dur("duration", duration).
			Interface("args", args).
			Msg("Slow query detected")
	}
}

// Context key for request ID
type contextKey string

const requestIDKey contextKey = constants.ContextKeyRequestID

// SetRequestID sets the request ID in the context
func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID gets the request ID from the context
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// RequestLoggerConfig holds configuration for request logging middleware
type RequestLoggerConfig struct {
	Logger *Logger

	// SkipPaths are paths that should not be logged
	SkipPaths []string
}

// RequestLogger is middleware for logging HTTP requests
type RequestLogger struct {
	config    RequestLoggerConfig
	skipPaths map[string]bool
}

// NewRequestLogger creates a new request logging middleware
func NewRequestLogger(config RequestLoggerConfig) *RequestLogger {
	skipPaths := make(map[string]bool)
	for _, path := range config.SkipPaths {
		skipPaths[path] = true
	}

	return &RequestLogger{
		config:    config,
		skipPaths: skipPaths,
	}
}

// Middleware returns the HTTP middleware function
func (rl *RequestLogger) Middleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if rl.skipPaths[r.URL.Path] {
			next(w, r)
			return
		}

		start := time.Now()

		// Generate or get request ID
		requestID := r.Header.Get(constants.HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set(constants.HeaderRequestID, requestID)

		ctx := SetRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next(rw, r)

		duration := time.Since(start)

		event := rl.config.Logger.logger.Info()
		if rw.statusCode >= 500 {
			event = rl.config.Logger.logger.Error()
		} else if rw.statusCode >= 400 {
			event = rl.config.Logger.logger.Warn()
		}

		event.
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rw.statusCode).
			Dur("duration", duration).
			Int("bytes", rw.bytesWritten).
			Str("remote_addr", r.RemoteAddr).
			Msg("Request completed")
	}
}

// responseWriter wraps http.ResponseWriter to capture status code and bytes
type responseWriter struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.bytesWritten += n
	return n, err
}

// Global logger instance
var globalLogger *Logger

// Init initializes the global logger
func Init(config LoggerConfig) {
	globalLogger = NewLogger(config)
}

// GetLogger returns the global logger
func GetLogger() *Logger {
	if globalLogger == nil {
		globalLogger = NewLogger(LoggerConfig{
			Level: LevelInfo,
		})
	}
	return globalLogger
}

// Info logs an info message using the global logger
func Info(msg string) {
	GetLogger().Info(msg)
}

// Infof logs a formatted info message using the global logger
func Infof(format string, args ...any) {
	GetLogger().Infof(format, args...)
}

// Warn logs a warning message using the global logger
func Warn(msg string) {
	GetLogger().Warn(msg)
}

// Error logs an error message using the global logger
func Error(msg string) {
	GetLogger().Error(msg)
}

// Errorf logs a formatted error message using the global logger
func Errorf(format string, args ...any) {
	GetLogger().Errorf(format, args...)
}

// ErrorWithErr logs an error with the error object using the global logger
func ErrorWithErr(msg string, err error) {
	GetLogger().ErrorWithErr(msg, err)
}
