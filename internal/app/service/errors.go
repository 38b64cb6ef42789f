package service

import (
	"net/http"

	"github.com/ijalalfrz/tequila-client/internal/pkg/exception"
)

var ErrMissingAuthToken = exception.ApplicationError{
	Message:    "KW-Auth-Token header is required",
	StatusCode: http.StatusUnauthorized,
}
