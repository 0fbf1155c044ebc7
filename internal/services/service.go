package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/yukikurage/employee-management-api/internal/derive"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
)

// ValidationError carries field-level messages keyed by input field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "validation failed: " + strings.Join(keys, ", ")
}

// Add records a message for field, keeping the first message per field.
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

// Err returns e when it holds messages and nil otherwise.
func (e *ValidationError) Err() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// fieldError builds a ValidationError for a single field.
func fieldError(field, message string) error {
	v := &ValidationError{}
	v.Add(field, message)
	return v
}

// Clock returns the current time.
type Clock func() time.Time

type clocked struct {
	clock Clock
}

// SetClock replaces the time source.
func (c *clocked) SetClock(clock Clock) {
	c.clock = clock
}

// Today is the current calendar date.
func (c *clocked) Today() time.Time {
	if c.clock == nil {
		return derive.Day(time.Now())
	}
	return derive.Day(c.clock())
}

func loggerOrDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// notFound converts gorm's missing-record error into ErrNotFound.
func notFound(err error, entity string, id uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s %d", ErrNotFound, entity, id)
	}
	return fmt.Errorf("failed to find %s: %w", entity, err)
}

func parseDateField(v *ValidationError, field, value string) time.Time {
	d, err := derive.ParseDate(strings.TrimSpace(value))
	if err != nil {
		v.Add(field, fmt.Sprintf("The %s is not a valid date (YYYY-MM-DD).", humanize(field)))
		return time.Time{}
	}
	return d
}

func checkTimeField(v *ValidationError, field, value string) {
	if _, err := time.Parse(derive.TimeLayout, value); err != nil {
		v.Add(field, fmt.Sprintf("The %s must be a time in HH:MM format.", humanize(field)))
	}
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func humanize(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}
