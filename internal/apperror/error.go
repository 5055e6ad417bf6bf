package apperror

import (
	"errors"
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strings"
)

// ErrNotFound is returned when a record is not present in the current collection.
// Display code resolves stale references with a fallback instead of surfacing it.
var ErrNotFound = errors.New("record not found")

// ValidationError holds field-level messages produced before a request is sent.
type ValidationError struct {
	Fields map[string]string // field name (json tag) -> human readable message
}

// Error implements error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range slices.Sorted(maps.Keys(e.Fields)) {
		parts = append(parts, field+": "+e.Fields[field])
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidation returns nil when there are no field errors.
func NewValidation(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// RequestFailed is a fetch or mutation rejected by the transport or by the server.
type RequestFailed struct {
	Op     string // e.g. "create employee"
	Status int    // HTTP status, 0 when no response was received
	Detail string // server supplied message, may be empty
	Err    error  // transport error, may be nil
}

// Error implements error interface.
func (e *RequestFailed) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: request failed: %v", e.Op, e.Err)
	case e.Detail != "":
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Detail)
	default:
		return fmt.Sprintf("%s: status %d", e.Op, e.Status)
	}
}

// Unwrap implements errors.Unwrap interface for errors.Is/As.
func (e *RequestFailed) Unwrap() error {
	return e.Err
}

// Message returns the server detail, or fallback when the server gave none.
func (e *RequestFailed) Message(fallback string) string {
	if e.Detail != "" {
		return e.Detail
	}
	return fallback
}

// IsNotFound reports whether err is a local ErrNotFound or a 404 from the API.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var reqErr *RequestFailed
	return errors.As(err, &reqErr) && reqErr.Status == http.StatusNotFound
}

// FieldErrors returns the per-field messages carried by err, or nil.
func FieldErrors(err error) map[string]string {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Fields
	}
	return nil
}

// FormMessage returns the single form-level message for err.
// Validation errors belong to their fields, so they produce an empty message.
func FormMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}

	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return ""
	}

	var reqErr *RequestFailed
	if errors.As(err, &reqErr) {
		return reqErr.Message(fallback)
	}

	return fallback
}
