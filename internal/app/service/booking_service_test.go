//go:build unit

package service

import (
	"context"
	"testing"

	"github.com/ijalalfrz/tequila-client/pkg/tequila"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBookingService_ConfirmPayment(t *testing.T) {
	confirmRequest := func(result tequila.ConfirmPaymentResult) func(t *testing.T) {
		return func(t *testing.T) {
			api := NewMockBookingAPI(t)
			params := tequila.ConfirmPaymentParams{BookingID: "1", TransactionID: "2"}
			api.On("ConfirmPayment", mock.Anything, params).Return(result, nil)

			got, err := NewBookingService(api).ConfirmPayment(context.Background(), params)
			require.NoError(t, err)
			assert.Equal(t, result, got)
		}
	}

	t.Run("success", confirmRequest(tequila.ConfirmPaymentResult{Status: tequila.PaymentSuccess}))
	t.Run("failure", confirmRequest(tequila.ConfirmPaymentResult{Status: tequila.PaymentFailed}))
	t.Run("timeout", confirmRequest(tequila.ConfirmPaymentResult{Status: tequila.PaymentTimeout, Msg: "timeout"}))
}

func TestBookingService_CheckFlights(t *testing.T) {
	api := NewMockBookingAPI(t)
	params := tequila.CheckFlightsParams{BookingToken: "BT", Adults: 1}
	flight := tequila.BookingFlight{SessionID: "S", FlightsInvalid: true, PriceChange: true}
	api.On("CheckFlights", mock.Anything, params).Return(flight, nil)

	got, err := NewBookingService(api).CheckFlights(context.Background(), params)
	require.NoError(t, err)
	assert.True(t, got.FlightsInvalid)
	assert.True(t, got.PriceChange)
}
