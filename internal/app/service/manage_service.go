package service

import (
	"context"
	"fmt"

	"github.com/ijalalfrz/tequila-client/pkg/tequila"
)

type ManageAPI interface {
	CreateAuthToken(ctx context.Context) (tequila.AuthToken, error)
	CreateRefunds(ctx context.Context, refunds []tequila.RefundRequest) ([]tequila.Refund, error)
	GetPassengers(ctx context.Context, bookingID string) ([]tequila.BookingPassengers, error)
	UpdatePassengerPassport(ctx context.Context, bookingID string, details tequila.PassportDetails) ([]tequila.BookingPassengers, error)
}

// ManageAPIFactory returns a ManageAPI sending token as KW-Auth-Token.
type ManageAPIFactory func(token string) (ManageAPI, error)

// ManageService runs the management calls with the token of the inbound
// request, or with the configured token when the request has none.
type ManageService struct {
	// Default is built with the configured token, which may be empty.
	Default         ManageAPI
	HasDefaultToken bool
	ForToken        ManageAPIFactory
}

func NewManageService(defaultAPI ManageAPI, hasDefaultToken bool, forToken ManageAPIFactory) *ManageService {
	return &ManageService{
		Default:         defaultAPI,
		HasDefaultToken: hasDefaultToken,
		ForToken:        forToken,
	}
}

// CreateAuthToken needs the API key only.
func (s *ManageService) CreateAuthToken(ctx context.Context) (tequila.AuthToken, error) {
	return s.Default.CreateAuthToken(ctx)
}

func (s *ManageService) CreateRefunds(ctx context.Context, token string, refunds []tequila.RefundRequest) ([]tequila.Refund, error) {
	api, err := s.apiFor(token)
	if err != nil {
		return nil, err
	}

	return api.CreateRefunds(ctx, refunds)
}

func (s *ManageService) GetPassengers(ctx context.Context, token string, bookingID string) ([]tequila.BookingPassengers, error) {
	api, err := s.apiFor(token)
	if err != nil {
		return nil, err
	}

	return api.GetPassengers(ctx, bookingID)
}

func (s *ManageService) UpdatePassengerPassport(
	ctx context.Context,
	token string,
	bookingID string,
	details tequila.PassportDetails,
) ([]tequila.BookingPassengers, error) {
	api, err := s.apiFor(token)
	if err != nil {
		return nil, err
	}

	return api.UpdatePassengerPassport(ctx, bookingID, details)
}

func (s *ManageService) apiFor(token string) (ManageAPI, error) {
	if token == "" {
		if !s.HasDefaultToken {
			return nil, ErrMissingAuthToken
		}

		return s.Default, nil
	}

	api, err := s.ForToken(token)
	if err != nil {
		return nil, fmt.Errorf("build manage client: %w", err)
	}

	return api, nil
}
