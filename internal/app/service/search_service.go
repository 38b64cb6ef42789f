package service

import (
	"context"
	"log/slog"

	"github.com/ijalalfrz/tequila-client/pkg/tequila"
)

type SearchAPI interface {
	SearchFlights(ctx context.Context, params tequila.SearchFlightsParams) (tequila.SearchFlightsResult, error)
}

type SearchService struct {
	API SearchAPI
}

func NewSearchService(api SearchAPI) *SearchService {
	return &SearchService{API: api}
}

// SearchFlights forwards the search as is. Results are not cached since
// their booking tokens expire.
// SearchFlights godoc
// @Summary      Search flights
// @Tags         Search
// @Param        request  body      tequila.SearchFlightsParams  true  "Search parameters"
// @Success      200      {object}  tequila.SearchFlightsResult
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      429      {object}  dto.ErrorResponse
// @Router       /api/v1/search [post]
func (s *SearchService) SearchFlights(ctx context.Context, params tequila.SearchFlightsParams) (tequila.SearchFlightsResult, error) {
	result, err := s.API.SearchFlights(ctx, params)
	if err != nil {
		return tequila.SearchFlightsResult{}, err
	}

	slog.DebugContext(ctx, "flights searched",
		slog.String("search_id", result.SearchID),
		slog.Int("results", len(result.Data)))

	return result, nil
}
