package resilience

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"
)

// TransientError wraps an error that is safe to retry (e.g., 429, 5xx,
// network timeout).
type TransientError struct {
	Err        error
	StatusCode int
}

func (e *TransientError) Error() string {
	return e.Err.Error()
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// NewTransientError wraps an error as transient with an optional HTTP
// status code.
func NewTransientError(err error, statusCode int) *TransientError {
	return &TransientError{Err: err, StatusCode: statusCode}
}

// APIStatusError is EDINET's in-band error signal: the API answers HTTP
// 200 with a status code inside the JSON metadata envelope. Body-level
// "500" shows up during index rebuilds; "404" means the requested date
// or document is not served.
type APIStatusError struct {
	Status  string
	Message string
}

// NewAPIStatusError builds an APIStatusError from the metadata envelope.
func NewAPIStatusError(status, message string) *APIStatusError {
	return &APIStatusError{Status: status, Message: message}
}

func (e *APIStatusError) Error() string {
	return fmt.Sprintf("edinet api status %s: %s", e.Status, e.Message)
}

// Transient reports whether the body-level status is a server-side
// condition worth retrying. Body-level 404 stays permanent for the same
// reason HTTP 404 does.
func (e *APIStatusError) Transient() bool {
	switch e.Status {
	case "500", "503":
		return true
	default:
		return false
	}
}

// IsTransient returns true if the error (or any error in its chain) is a
// TransientError or a transient APIStatusError, or if it matches common
// transient error patterns (network timeouts, connection resets, DNS
// failures).
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var te *TransientError
	if errors.As(err, &te) {
		return true
	}

	var se *APIStatusError
	if errors.As(err, &se) {
		return se.Transient()
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	if errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNABORTED) {
		return true
	}

	// String-based heuristics for wrapped errors from HTTP clients.
	msg := strings.ToLower(err.Error())
	transientPatterns := []string{
		"connection reset by peer",
		"broken pipe",
		"temporary failure in name resolution",
		"no such host",
		"tls handshake timeout",
		"i/o timeout",
		"server closed idle connection",
		"transport connection broken",
	}
	for _, p := range transientPatterns {
		if strings.Contains(msg, p) {
			return true
		}
	}

	return false
}

// IsTransientHTTPStatus returns true if the HTTP status code indicates a
// transient server-side issue that is safe to retry. 404 is excluded even
// though EDINET briefly returns it for freshly listed documents: retrying
// inside one call hides a real signal the caller needs.
func IsTransientHTTPStatus(statusCode int) bool {
	switch statusCode {
	case 408, // Request Timeout
		429, // Too Many Requests
		500, // Internal Server Error
		502, // Bad Gateway
		503, // Service Unavailable
		504: // Gateway Timeout
		return true
	default:
		return false
	}
}
