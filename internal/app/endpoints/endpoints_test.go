//go:build unit

package endpoints

import (
	"context"
	"errors"
	"testing"

	"github.com/ijalalfrz/tequila-client/internal/app/dto"
	"github.com/ijalalfrz/tequila-client/pkg/tequila"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSearchService struct {
	result tequila.SearchFlightsResult
	err    error
	got    tequila.SearchFlightsParams
}

func (s *stubSearchService) SearchFlights(_ context.Context, params tequila.SearchFlightsParams) (tequila.SearchFlightsResult, error) {
	s.got = params
	return s.result, s.err
}

func TestMakeSearchEndpoint(t *testing.T) {
	searchRequest := func(req interface{}, svc *stubSearchService, wantErr error) func(t *testing.T) {
		return func(t *testing.T) {
			ep := MakeSearchEndpoint(svc).SearchFlights

			got, err := ep(context.Background(), req)
			if wantErr != nil {
				assert.ErrorIs(t, err, wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, svc.result, got)
			assert.Equal(t, "PRG", svc.got.FlyFrom)
		}
	}

	params := tequila.SearchFlightsParams{FlyFrom: "PRG"}
	upstream := errors.New("upstream down")

	t.Run("success", searchRequest(dto.NewRequest(params),
		&stubSearchService{result: tequila.SearchFlightsResult{SearchID: "s1"}}, nil))
	t.Run("service_error_wrapped", searchRequest(dto.NewRequest(params),
		&stubSearchService{err: upstream}, upstream))
	t.Run("invalid_type", searchRequest(params, &stubSearchService{}, ErrInvalidType))
	t.Run("nil_request", searchRequest((*dto.Request[tequila.SearchFlightsParams])(nil), &stubSearchService{}, ErrInvalidType))
}
