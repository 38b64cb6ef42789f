package tequila

import (
	"context"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/tequila-client/internal/pkg/transport/httpclient"
)

const pathSearch = "search"

// SearchService wraps the Search API.
type SearchService struct {
	search endpoint.Endpoint
}

func newSearchService(transport *httpclient.Client) *SearchService {
	return &SearchService{
		search: jsonEndpoint[SearchFlightsResult](transport),
	}
}

// SearchFlights returns the itineraries matching params. Filtering, sorting
// and limiting are all done remotely through the parameters.
func (s *SearchService) SearchFlights(ctx context.Context, params SearchFlightsParams) (SearchFlightsResult, error) {
	req, err := encodeQuery(pathSearch, params)
	if err != nil {
		return SearchFlightsResult{}, err
	}

	return call[SearchFlightsResult](ctx, s.search, req)
}
