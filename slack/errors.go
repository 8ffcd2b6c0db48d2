package slack

import (
	"fmt"

	"github.com/pkg/errors"
)

// Slack error codes handled by the client
const (
	ErrCodeNameTaken        = "name_taken"
	ErrCodeAlreadyInChannel = "already_in_channel"
	ErrCodeCantInviteSelf   = "cant_invite_self"
)

var (
	// ErrNotFound is returned when a lookup exhausted the listing without a match
	ErrNotFound = errors.New("not found")
	// ErrSearchExhausted is returned when a lookup hit Config.MaxPages before the listing ended
	ErrSearchExhausted = errors.New("search exhausted")
)

// APIError is a response with "ok": false
type APIError struct {
	Method string
	Code   string
}

func (e *APIError) Error() string {
	code := e.Code
	if code == "" {
		code = "unknown"
	}
	if e.Method == "" {
		return fmt.Sprintf("API error: %s", code)
	}
	return fmt.Sprintf("%s: API error: %s", e.Method, code)
}

// IsNotFound reports whether err means the record doesn't exist
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAPIError reports whether err carries an API error with the provided code.
// An empty code matches any API error.
func IsAPIError(err error, code string) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return code == "" || apiErr.Code == code
}
