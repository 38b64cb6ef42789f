package dto

import (
	"encoding/json"
	"net/http"
)

// Request carries the parameters of one Tequila call decoded from the JSON
// body of the inbound request.
type Request[P any] struct {
	Params P
}

// NewRequest wraps params, mostly for tests and programmatic callers.
func NewRequest[P any](params P) *Request[P] {
	return &Request[P]{Params: params}
}

func (r *Request[P]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &r.Params)
}

func (r *Request[P]) Bind(_ *http.Request) error {
	return r.Validate()
}

func (r *Request[P]) Validate() error {
	return validateRequest(&r.Params)
}
