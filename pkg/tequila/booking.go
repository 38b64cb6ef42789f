package tequila

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	"github.com/google/go-querystring/query"
	"github.com/ijalalfrz/tequila-client/internal/pkg/transport/httpclient"
)

const (
	pathCheckFlights      = "booking/check_flights"
	pathSaveBooking       = "booking/save_booking"
	pathConfirmPayment    = "booking/confirm_payment"
	pathAncillariesOffers = "booking/ancillaries_offers"
)

// BookingService wraps the Booking API.
//
// A booking goes through three calls:
//
//  1. CheckFlights until FlightsChecked is true, every 2-3 seconds and then
//     every 15 seconds while the booking is being filled in. The booking
//     token is valid for 30 minutes and the session for 15 minutes without
//     a check. Abort when FlightsInvalid is true; show the new price when
//     PriceChange is true.
//  2. SaveBooking once per itinerary.
//  3. ConfirmPayment within 30 minutes of SaveBooking. Funds of bookings
//     that are never confirmed are released after 90 minutes.
//
// The client enforces none of these rules.
type BookingService struct {
	flight      endpoint.Endpoint
	payment     endpoint.Endpoint
	ancillaries endpoint.Endpoint
}

func newBookingService(transport *httpclient.Client) *BookingService {
	return &BookingService{
		flight:      jsonEndpoint[BookingFlight](transport),
		payment:     jsonEndpoint[ConfirmPaymentResult](transport),
		ancillaries: jsonEndpoint[AncillariesOffersResult](transport),
	}
}

// CheckFlights returns the current price and availability of the itinerary.
// It changes nothing remotely and can be called repeatedly.
func (s *BookingService) CheckFlights(ctx context.Context, params CheckFlightsParams) (BookingFlight, error) {
	req, err := encodeQuery(pathCheckFlights, params)
	if err != nil {
		return BookingFlight{}, err
	}

	return call[BookingFlight](ctx, s.flight, req)
}

// SaveBooking creates the booking. VisitorUniqID, when set, is sent in the
// query string and never in the body.
func (s *BookingService) SaveBooking(ctx context.Context, params SaveBookingParams) (BookingFlight, error) {
	values, err := query.Values(struct {
		VisitorUniqID string `url:"visitor_uniqid,omitempty"`
	}{params.VisitorUniqID})
	if err != nil {
		return BookingFlight{}, fmt.Errorf("tequila %s: encode query: %w", pathSaveBooking, err)
	}

	return call[BookingFlight](ctx, s.flight, httpclient.Request{
		Method: http.MethodPost,
		Path:   pathSaveBooking,
		Query:  values,
		Body:   params,
	})
}

// ConfirmPayment confirms the payment of a saved booking. A failed or timed out payment
// is reported through ConfirmPaymentResult.Status, not as an error.
func (s *BookingService) ConfirmPayment(ctx context.Context, params ConfirmPaymentParams) (ConfirmPaymentResult, error) {
	return call[ConfirmPaymentResult](ctx, s.payment, httpclient.Request{
		Method: http.MethodPost,
		Path:   pathConfirmPayment,
		Body:   params,
	})
}

// AncillariesOffers lists the seating offers for the itinerary of an ongoing
// booking session.
func (s *BookingService) AncillariesOffers(ctx context.Context, params AncillariesOffersParams) (AncillariesOffersResult, error) {
	return call[AncillariesOffersResult](ctx, s.ancillaries, httpclient.Request{
		Method: http.MethodPost,
		Path:   pathAncillariesOffers,
		Body:   params,
	})
}
