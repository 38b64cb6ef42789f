package tequila

import (
	"errors"

	"github.com/ijalalfrz/tequila-client/internal/pkg/exception"
)

// APIError is returned for every non-2xx answer of the remote API. Body holds
// the raw response so callers can inspect provider specific error payloads.
type APIError = exception.ApplicationError

// AsAPIError reports whether err carries an APIError and returns it.
func AsAPIError(err error) (APIError, bool) {
	var apiErr APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return APIError{}, false
}
