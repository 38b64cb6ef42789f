package service

import (
	"context"
	"log/slog"

	"github.com/ijalalfrz/tequila-client/pkg/tequila"
)

type BookingAPI interface {
	CheckFlights(ctx context.Context, params tequila.CheckFlightsParams) (tequila.BookingFlight, error)
	SaveBooking(ctx context.Context, params tequila.SaveBookingParams) (tequila.BookingFlight, error)
	ConfirmPayment(ctx context.Context, params tequila.ConfirmPaymentParams) (tequila.ConfirmPaymentResult, error)
	AncillariesOffers(ctx context.Context, params tequila.AncillariesOffersParams) (tequila.AncillariesOffersResult, error)
}

// BookingService forwards the booking calls. Business outcomes such as an
// invalid itinerary or a failed payment are returned to the caller as they
// are and only logged here.
type BookingService struct {
	API BookingAPI
}

func NewBookingService(api BookingAPI) *BookingService {
	return &BookingService{API: api}
}

func (s *BookingService) CheckFlights(ctx context.Context, params tequila.CheckFlightsParams) (tequila.BookingFlight, error) {
	flight, err := s.API.CheckFlights(ctx, params)
	if err != nil {
		return tequila.BookingFlight{}, err
	}

	if flight.FlightsInvalid {
		slog.InfoContext(ctx, "itinerary is no longer valid", slog.String("session_id", flight.SessionID))
	}

	if flight.PriceChange {
		slog.InfoContext(ctx, "itinerary price changed",
			slog.String("session_id", flight.SessionID),
			slog.Float64("total", flight.Total))
	}

	return flight, nil
}

func (s *BookingService) SaveBooking(ctx context.Context, params tequila.SaveBookingParams) (tequila.BookingFlight, error) {
	booking, err := s.API.SaveBooking(ctx, params)
	if err != nil {
		return tequila.BookingFlight{}, err
	}

	slog.InfoContext(ctx, "booking saved",
		slog.String("booking_id", booking.BookingID.String()),
		slog.String("session_id", params.SessionID))

	return booking, nil
}

func (s *BookingService) ConfirmPayment(ctx context.Context, params tequila.ConfirmPaymentParams) (tequila.ConfirmPaymentResult, error) {
	result, err := s.API.ConfirmPayment(ctx, params)
	if err != nil {
		return tequila.ConfirmPaymentResult{}, err
	}

	if !result.Succeeded() {
		slog.WarnContext(ctx, "payment not confirmed",
			slog.String("booking_id", params.BookingID),
			slog.Int("status", int(result.Status)),
			slog.String("msg", result.Msg))
	}

	return result, nil
}

func (s *BookingService) AncillariesOffers(ctx context.Context, params tequila.AncillariesOffersParams) (tequila.AncillariesOffersResult, error) {
	return s.API.AncillariesOffers(ctx, params)
}
