package tequila

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/tequila-client/internal/pkg/transport/httpclient"
)

const (
	pathCreateAuthToken = "manage/create_auth_token"
	pathRefunds         = "manage/refunds"
	pathPassengers      = "manage/bookings/%s/passengers"
)

// ErrInvalidBookingID is returned before any request is sent when the booking
// id is empty or a dot segment, which would change the resolved path.
var ErrInvalidBookingID = errors.New("tequila: invalid booking id")

// ManageService wraps the post-booking Manage API. Every call carries the
// KW-Auth-Token given in Config.AuthToken.
type ManageService struct {
	authToken  endpoint.Endpoint
	refunds    endpoint.Endpoint
	passengers endpoint.Endpoint
}

func newManageService(transport *httpclient.Client) *ManageService {
	return &ManageService{
		authToken:  jsonEndpoint[AuthToken](transport),
		refunds:    jsonEndpoint[[]Refund](transport),
		passengers: jsonEndpoint[[]BookingPassengers](transport),
	}
}

// CreateAuthToken issues a token valid for 30 minutes. It is not stored;
// build a client with Client.WithAuthToken to use it.
func (s *ManageService) CreateAuthToken(ctx context.Context) (AuthToken, error) {
	return call[AuthToken](ctx, s.authToken, httpclient.Request{
		Method: http.MethodPost,
		Path:   pathCreateAuthToken,
	})
}

// CreateRefunds returns one refund per request, in the same order.
func (s *ManageService) CreateRefunds(ctx context.Context, refunds []RefundRequest) ([]Refund, error) {
	return call[[]Refund](ctx, s.refunds, httpclient.Request{
		Method: http.MethodPost,
		Path:   pathRefunds,
		Body:   refunds,
	})
}

func (s *ManageService) GetPassengers(ctx context.Context, bookingID string) ([]BookingPassengers, error) {
	path, err := passengersPath(bookingID)
	if err != nil {
		return nil, err
	}

	return call[[]BookingPassengers](ctx, s.passengers, httpclient.Request{
		Method: http.MethodGet,
		Path:   path,
	})
}

// UpdatePassengerPassport patches the travel document of one passenger and
// returns the passengers of the booking.
func (s *ManageService) UpdatePassengerPassport(
	ctx context.Context,
	bookingID string,
	details PassportDetails,
) ([]BookingPassengers, error) {
	path, err := passengersPath(bookingID)
	if err != nil {
		return nil, err
	}

	return call[[]BookingPassengers](ctx, s.passengers, httpclient.Request{
		Method: http.MethodPatch,
		Path:   path,
		Body:   details,
	})
}

// passengersPath keeps the booking id a single literal segment. PathEscape
// leaves dots alone and ResolveReference would collapse "." and "..".
func passengersPath(bookingID string) (string, error) {
	switch bookingID {
	case "", ".", "..":
		return "", fmt.Errorf("%w: %q", ErrInvalidBookingID, bookingID)
	}

	return fmt.Sprintf(pathPassengers, url.PathEscape(bookingID)), nil
}
