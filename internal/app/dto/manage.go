package dto

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ijalalfrz/tequila-client/pkg/tequila"
)

// AuthTokenHeader carries the Tequila management token on inbound requests.
const AuthTokenHeader = "KW-Auth-Token"

const bookingIDParam = "booking_id"

// ManageRequest is embedded by every management request. The token is
// optional here; the service decides whether one is needed.
type ManageRequest struct {
	AuthToken string `json:"-"`
}

func (r *ManageRequest) bindToken(req *http.Request) {
	r.AuthToken = req.Header.Get(AuthTokenHeader)
}

type CreateAuthTokenRequest struct {
	ManageRequest
}

func (r *CreateAuthTokenRequest) Bind(req *http.Request) error {
	r.bindToken(req)

	return nil
}

// RefundsRequest is a JSON array of refund requests.
type RefundsRequest struct {
	ManageRequest
	Refunds []tequila.RefundRequest `validate:"required,min=1,dive"`
}

func (r *RefundsRequest) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &r.Refunds)
}

func (r *RefundsRequest) Bind(req *http.Request) error {
	r.bindToken(req)

	return validateRequest(r)
}

// PassengersRequest addresses the passengers of the booking in the URL.
type PassengersRequest struct {
	ManageRequest
	BookingID string `json:"booking_id" validate:"required,numeric"`
}

func (r *PassengersRequest) Bind(req *http.Request) error {
	r.bindToken(req)
	r.BookingID = chi.URLParam(req, bookingIDParam)

	return validateRequest(r)
}

// UpdatePassportRequest patches one passenger of the booking in the URL with
// the passport details of the body.
type UpdatePassportRequest struct {
	PassengersRequest
	Details tequila.PassportDetails
}

func (r *UpdatePassportRequest) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &r.Details)
}

func (r *UpdatePassportRequest) Bind(req *http.Request) error {
	if err := r.PassengersRequest.Bind(req); err != nil {
		return err
	}

	return validateRequest(&r.Details)
}
