package exception

import (
	"errors"
	"fmt"
)

// ApplicationError handles application level errors. Errors coming back from the
// Tequila API carry the upstream status code and the raw response body.
type ApplicationError struct {
	Message    string
	StatusCode int
	Body       []byte
	Cause      error
}

// Error interface implementation.
func (e ApplicationError) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Message, e.Cause)
}

// Unwrap returns the cause, or a plain error holding the message when there is
// none, as for errors decoded from an upstream response.
func (e ApplicationError) Unwrap() error {
	if e.Cause == nil {
		return errors.New(e.Message)
	}

	return e.Cause
}

// Is matches on message and cause only. Status code and upstream body are not
// compared; the upstream status and body text are already part of the message.
func (e ApplicationError) Is(target error) bool {
	var targetErr ApplicationError

	if !errors.As(target, &targetErr) {
		return false
	}

	return e.Cause == targetErr.Cause &&
		e.Message == targetErr.Message
}

// ErrorCode returns the HTTP status. For upstream errors it is the status
// Tequila answered with; the gateway may still map it (5xx becomes 502).
func (e ApplicationError) ErrorCode() int {
	return e.StatusCode
}

// IsRemote reports whether the error was produced from an upstream response.
func (e ApplicationError) IsRemote() bool {
	return e.Body != nil
}
