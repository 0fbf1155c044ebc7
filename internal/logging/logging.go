// Package logging configures structured logging for the API.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/employee-management-api/internal/constants"
)

// Config holds logger configuration.
type Config struct {
	Level  slog.Level // Minimum log level
	JSON   bool       // Use JSON output format
	Output io.Writer  // Output destination (default: stderr)
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewConfig builds a Config from the LOG_LEVEL and LOG_FORMAT settings.
func NewConfig(level, format string) Config {
	return Config{
		Level: ParseLevel(level),
		JSON:  strings.EqualFold(format, "json"),
	}
}

// New creates a logger with the given configuration.
func New(cfg Config) *slog.Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: cfg.Level}

	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}
	return slog.New(handler)
}

// Init creates a logger and installs it as the slog default.
func Init(cfg Config) *slog.Logger {
	logger := New(cfg)
	slog.SetDefault(logger)
	return logger
}

// RequestLogger logs one line per request. Server errors log at error
// level and client errors at warn.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
			"request_id", c.GetString(constants.ContextKeyRequestID),
		}
		if userID, ok := c.Get(constants.ContextKeyUserID); ok {
			attrs = append(attrs, "user_id", userID)
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.String())
		}

		logger.Log(c.Request.Context(), level, "request", attrs...)
	}
}
