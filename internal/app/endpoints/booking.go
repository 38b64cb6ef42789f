package endpoints

import (
	"context"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/tequila-client/internal/app/dto"
	"github.com/ijalalfrz/tequila-client/pkg/tequila"
)

type BookingService interface {
	CheckFlights(ctx context.Context, params tequila.CheckFlightsParams) (tequila.BookingFlight, error)
	SaveBooking(ctx context.Context, params tequila.SaveBookingParams) (tequila.BookingFlight, error)
	ConfirmPayment(ctx context.Context, params tequila.ConfirmPaymentParams) (tequila.ConfirmPaymentResult, error)
	AncillariesOffers(ctx context.Context, params tequila.AncillariesOffersParams) (tequila.AncillariesOffersResult, error)
}

type BookingEndpoint struct {
	CheckFlights      endpoint.Endpoint
	SaveBooking       endpoint.Endpoint
	ConfirmPayment    endpoint.Endpoint
	AncillariesOffers endpoint.Endpoint
}

func MakeBookingEndpoint(service BookingService) BookingEndpoint {
	return BookingEndpoint{
		CheckFlights:      makeParamsEndpoint("check flights", service.CheckFlights),
		SaveBooking:       makeSaveBookingEndpoint(service),
		ConfirmPayment:    makeParamsEndpoint("confirm payment", service.ConfirmPayment),
		AncillariesOffers: makeParamsEndpoint("ancillaries offers", service.AncillariesOffers),
	}
}

func makeSaveBookingEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SaveBookingRequest)
		if !ok || request == nil {
			return nil, ErrInvalidType
		}

		booking, err := service.SaveBooking(ctx, request.Params)
		if err != nil {
			return nil, fmt.Errorf("save booking: %w", err)
		}

		return booking, nil
	}
}
