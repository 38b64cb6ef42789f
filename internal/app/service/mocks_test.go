package service

import (
	"context"
	"time"

	"github.com/ijalalfrz/tequila-client/pkg/tequila"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type MockLocationCacher struct {
	mock.Mock
}

func NewMockLocationCacher(t testingT) *MockLocationCacher {
	m := &MockLocationCacher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockLocationCacher) GetCacheKey(op string, params interface{}) (string, error) {
	args := m.Called(op, params)
	return args.String(0), args.Error(1)
}

func (m *MockLocationCacher) GetLockKey(op string, params interface{}) (string, error) {
	args := m.Called(op, params)
	return args.String(0), args.Error(1)
}

func (m *MockLocationCacher) AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error) {
	args := m.Called(ctx, key, timeout)
	return args.Bool(0), args.Error(1)
}

func (m *MockLocationCacher) ReleaseLock(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockLocationCacher) Get(ctx context.Context, key string) (tequila.LocationQueryResult, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(tequila.LocationQueryResult), args.Error(1)
}

func (m *MockLocationCacher) Set(ctx context.Context, key string, result tequila.LocationQueryResult, expiration time.Duration) error {
	args := m.Called(ctx, key, result, expiration)
	return args.Error(0)
}

type MockLocationAPI struct {
	mock.Mock
}

func NewMockLocationAPI(t testingT) *MockLocationAPI {
	m := &MockLocationAPI{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockLocationAPI) result(args mock.Arguments) (tequila.LocationQueryResult, error) {
	return args.Get(0).(tequila.LocationQueryResult), args.Error(1)
}

func (m *MockLocationAPI) SearchByQuery(ctx context.Context, params tequila.SearchByQueryParams) (tequila.LocationQueryResult, error) {
	return m.result(m.Called(ctx, params))
}

func (m *MockLocationAPI) SearchByRadius(ctx context.Context, params tequila.SearchByRadiusParams) (tequila.LocationQueryResult, error) {
	return m.result(m.Called(ctx, params))
}

func (m *MockLocationAPI) SearchByBox(ctx context.Context, params tequila.SearchByBoxParams) (tequila.LocationQueryResult, error) {
	return m.result(m.Called(ctx, params))
}

func (m *MockLocationAPI) SearchByID(ctx context.Context, params tequila.SearchByIDParams) (tequila.LocationQueryResult, error) {
	return m.result(m.Called(ctx, params))
}

func (m *MockLocationAPI) GetDump(ctx context.Context, params tequila.GetDumpParams) (tequila.LocationQueryResult, error) {
	return m.result(m.Called(ctx, params))
}

func (m *MockLocationAPI) SearchTopDestinations(ctx context.Context, params tequila.TopDestinationsParams) (tequila.LocationQueryResult, error) {
	return m.result(m.Called(ctx, params))
}

func (m *MockLocationAPI) SearchByHashtag(ctx context.Context, params tequila.SearchByHashtagParams) (tequila.LocationQueryResult, error) {
	return m.result(m.Called(ctx, params))
}

func (m *MockLocationAPI) SearchTopHashtags(ctx context.Context, params tequila.TopHashtagsParams) (tequila.LocationQueryResult, error) {
	return m.result(m.Called(ctx, params))
}

func (m *MockLocationAPI) SearchBySlug(ctx context.Context, params tequila.SearchBySlugParams) (tequila.LocationQueryResult, error) {
	return m.result(m.Called(ctx, params))
}

type MockBookingAPI struct {
	mock.Mock
}

func NewMockBookingAPI(t testingT) *MockBookingAPI {
	m := &MockBookingAPI{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockBookingAPI) CheckFlights(ctx context.Context, params tequila.CheckFlightsParams) (tequila.BookingFlight, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(tequila.BookingFlight), args.Error(1)
}

func (m *MockBookingAPI) SaveBooking(ctx context.Context, params tequila.SaveBookingParams) (tequila.BookingFlight, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(tequila.BookingFlight), args.Error(1)
}

func (m *MockBookingAPI) ConfirmPayment(ctx context.Context, params tequila.ConfirmPaymentParams) (tequila.ConfirmPaymentResult, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(tequila.ConfirmPaymentResult), args.Error(1)
}

func (m *MockBookingAPI) AncillariesOffers(ctx context.Context, params tequila.AncillariesOffersParams) (tequila.AncillariesOffersResult, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(tequila.AncillariesOffersResult), args.Error(1)
}

type MockManageAPI struct {
	mock.Mock
}

func NewMockManageAPI(t testingT) *MockManageAPI {
	m := &MockManageAPI{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockManageAPI) CreateAuthToken(ctx context.Context) (tequila.AuthToken, error) {
	args := m.Called(ctx)
	return args.Get(0).(tequila.AuthToken), args.Error(1)
}

func (m *MockManageAPI) CreateRefunds(ctx context.Context, refunds []tequila.RefundRequest) ([]tequila.Refund, error) {
	args := m.Called(ctx, refunds)
	refundsOut, _ := args.Get(0).([]tequila.Refund)
	return refundsOut, args.Error(1)
}

func (m *MockManageAPI) GetPassengers(ctx context.Context, bookingID string) ([]tequila.BookingPassengers, error) {
	args := m.Called(ctx, bookingID)
	passengers, _ := args.Get(0).([]tequila.BookingPassengers)
	return passengers, args.Error(1)
}

func (m *MockManageAPI) UpdatePassengerPassport(ctx context.Context, bookingID string, details tequila.PassportDetails) ([]tequila.BookingPassengers, error) {
	args := m.Called(ctx, bookingID, details)
	passengers, _ := args.Get(0).([]tequila.BookingPassengers)
	return passengers, args.Error(1)
}
