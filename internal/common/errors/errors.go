// internal/common/errors/errors.go
// Package errors provides standardized error handling for the discovery engine.
package errors

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Resolution / parameter errors (caller's responsibility, never retried).
	ErrCodeInvalidParameters ErrorCode = "INVALID_PARAMETERS"
	ErrCodeAmbiguousLocation ErrorCode = "AMBIGUOUS_LOCATION"

	// Discovery outcomes.
	ErrCodeNoEventsFound ErrorCode = "NO_EVENTS_FOUND"
	ErrCodeEventNotFound ErrorCode = "EVENT_NOT_FOUND"

	// Upstream feed transport errors (surfaced by the feed client).
	ErrCodeFeedRequestFailed ErrorCode = "FEED_REQUEST_FAILED"
	ErrCodeFeedTimeout       ErrorCode = "FEED_TIMEOUT"
	ErrCodeFeedRateLimited   ErrorCode = "FEED_RATE_LIMITED"

	ErrCodeListingsFetchFailed ErrorCode = "LISTINGS_FETCH_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewInvalidParametersError creates a non-retryable parameter validation error.
func NewInvalidParametersError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidParameters,
		Message:   "Request parameters failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewEventNotFoundError creates a non-retryable single-event lookup error.
func NewEventNotFoundError(eventID int64) *StandardError {
	return &StandardError{
		Code:      ErrCodeEventNotFound,
		Message:   "Event not found in marketplace feed",
		Details:   fmt.Sprintf("eventId: %d", eventID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewFeedRequestFailedError creates a retryable upstream transport error.
func NewFeedRequestFailedError(endpoint string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeFeedRequestFailed,
		Message:   "Marketplace feed request failed",
		Details:   fmt.Sprintf("endpoint: %s, error: %s", endpoint, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewFeedTimeoutError creates a retryable upstream timeout error.
func NewFeedTimeoutError(endpoint string) *StandardError {
	return &StandardError{
		Code:      ErrCodeFeedTimeout,
		Message:   "Marketplace feed request timed out",
		Details:   fmt.Sprintf("endpoint: %s", endpoint),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewFeedRateLimitedError creates a retryable rate-limit error.
func NewFeedRateLimitedError(endpoint string) *StandardError {
	return &StandardError{
		Code:      ErrCodeFeedRateLimited,
		Message:   "Marketplace feed rejected the request with a rate limit",
		Details:   fmt.Sprintf("endpoint: %s", endpoint),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewListingsFetchFailedError creates a retryable listings lookup error.
func NewListingsFetchFailedError(eventID int64, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeListingsFetchFailed,
		Message:   "Ticket listings lookup failed",
		Details:   fmt.Sprintf("eventId: %d, error: %s", eventID, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// IsRetryable reports whether err is a StandardError marked retryable.
func IsRetryable(err error) bool {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Retryable
	}
	return false
}

// CodeOf extracts the error code from err, or empty when err is not a StandardError.
func CodeOf(err error) ErrorCode {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Code
	}
	return ""
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "FEED"):
		return "UPSTREAM"
	case strings.Contains(codeStr, "LISTINGS"):
		return "UPSTREAM"
	case strings.Contains(codeStr, "INVALID") || strings.Contains(codeStr, "AMBIGUOUS"):
		return "VALIDATION"
	case strings.Contains(codeStr, "NOT_FOUND"):
		return "DISCOVERY"
	default:
		return "OTHER"
	}
}
