package dto

import (
	"net/http"

	"github.com/ijalalfrz/tequila-client/pkg/tequila"
)

const visitorUniqIDParam = "visitor_uniqid"

// SaveBookingRequest takes the order from the body and the visitor id from
// the visitor_uniqid query parameter.
type SaveBookingRequest struct {
	Request[tequila.SaveBookingParams]
}

func (r *SaveBookingRequest) Bind(req *http.Request) error {
	r.Params.VisitorUniqID = req.URL.Query().Get(visitorUniqIDParam)

	return r.Validate()
}
