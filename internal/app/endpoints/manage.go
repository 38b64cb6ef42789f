package endpoints

import (
	"context"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/tequila-client/internal/app/dto"
	"github.com/ijalalfrz/tequila-client/pkg/tequila"
)

type ManageService interface {
	CreateAuthToken(ctx context.Context) (tequila.AuthToken, error)
	CreateRefunds(ctx context.Context, token string, refunds []tequila.RefundRequest) ([]tequila.Refund, error)
	GetPassengers(ctx context.Context, token string, bookingID string) ([]tequila.BookingPassengers, error)
	UpdatePassengerPassport(ctx context.Context, token string, bookingID string,
		details tequila.PassportDetails) ([]tequila.BookingPassengers, error)
}

type ManageEndpoint struct {
	CreateAuthToken         endpoint.Endpoint
	CreateRefunds           endpoint.Endpoint
	GetPassengers           endpoint.Endpoint
	UpdatePassengerPassport endpoint.Endpoint
}

func MakeManageEndpoint(service ManageService) ManageEndpoint {
	return ManageEndpoint{
		CreateAuthToken:         makeCreateAuthTokenEndpoint(service),
		CreateRefunds:           makeCreateRefundsEndpoint(service),
		GetPassengers:           makeGetPassengersEndpoint(service),
		UpdatePassengerPassport: makeUpdatePassengerPassportEndpoint(service),
	}
}

func makeCreateAuthTokenEndpoint(service ManageService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		if _, ok := req.(*dto.CreateAuthTokenRequest); !ok {
			return nil, ErrInvalidType
		}

		token, err := service.CreateAuthToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("create auth token: %w", err)
		}

		return token, nil
	}
}

func makeCreateRefundsEndpoint(service ManageService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.RefundsRequest)
		if !ok || request == nil {
			return nil, ErrInvalidType
		}

		refunds, err := service.CreateRefunds(ctx, request.AuthToken, request.Refunds)
		if err != nil {
			return nil, fmt.Errorf("create refunds: %w", err)
		}

		return refunds, nil
	}
}

func makeGetPassengersEndpoint(service ManageService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.PassengersRequest)
		if !ok || request == nil {
			return nil, ErrInvalidType
		}

		passengers, err := service.GetPassengers(ctx, request.AuthToken, request.BookingID)
		if err != nil {
			return nil, fmt.Errorf("get passengers: %w", err)
		}

		return passengers, nil
	}
}

func makeUpdatePassengerPassportEndpoint(service ManageService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.UpdatePassportRequest)
		if !ok || request == nil {
			return nil, ErrInvalidType
		}

		passengers, err := service.UpdatePassengerPassport(ctx, request.AuthToken, request.BookingID, request.Details)
		if err != nil {
			return nil, fmt.Errorf("update passenger passport: %w", err)
		}

		return passengers, nil
	}
}
