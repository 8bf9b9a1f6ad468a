package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrMissingToken is returned before any network call when an operation
// that requires authentication has no token available.
var ErrMissingToken = errors.New("no access token available: pass --token or set HF_TOKEN")

// Error is an error response from the Hub API.
type Error struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	switch {
	case e.StatusCode == http.StatusUnauthorized:
		return fmt.Sprintf("unauthorized: %s (token invalid or expired)", msg)
	case e.StatusCode == http.StatusForbidden:
		return fmt.Sprintf("forbidden: %s (token lacks write access to this space)", msg)
	case e.StatusCode == http.StatusNotFound:
		return fmt.Sprintf("not found: %s (space does not exist or is not accessible)", msg)
	case e.StatusCode == http.StatusTooManyRequests:
		return fmt.Sprintf("rate limited: %s (retry later)", msg)
	case e.StatusCode >= 500:
		return fmt.Sprintf("service unavailable: %s (status %d, retry later)", msg, e.StatusCode)
	}
	return fmt.Sprintf("hub API error (status %d): %s", e.StatusCode, msg)
}

// statusIs reports whether err is a *Error with the given status code.
func statusIs(err error, code int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// IsUnauthorized reports whether err is an HTTP 401 from the Hub.
func IsUnauthorized(err error) bool { return statusIs(err, http.StatusUnauthorized) }

// IsForbidden reports whether err is an HTTP 403 from the Hub.
func IsForbidden(err error) bool { return statusIs(err, http.StatusForbidden) }

// IsNotFound reports whether err is an HTTP 404 from the Hub. The Hub
// returns 404 both for absent spaces and for private spaces the caller
// cannot read.
func IsNotFound(err error) bool { return statusIs(err, http.StatusNotFound) }

// IsRateLimited reports whether err is an HTTP 429 from the Hub.
func IsRateLimited(err error) bool { return statusIs(err, http.StatusTooManyRequests) }

// IsUnavailable reports whether err is a 5xx response or a transport
// failure. Transient; the caller may re-invoke later.
func IsUnavailable(err error) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	return err != nil && strings.Contains(err.Error(), "request failed")
}

// ValidateSpaceID checks that id has the owner/name shape: exactly two
// non-empty path segments.
func ValidateSpaceID(id string) error {
	parts := strings.Split(id, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return fmt.Errorf("invalid space id %q: expected owner/name", id)
	}
	return nil
}
