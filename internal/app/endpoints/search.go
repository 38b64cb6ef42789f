package endpoints

import (
	"context"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/tequila-client/pkg/tequila"
)

type SearchService interface {
	SearchFlights(ctx context.Context, params tequila.SearchFlightsParams) (tequila.SearchFlightsResult, error)
}

type SearchEndpoint struct {
	SearchFlights endpoint.Endpoint
}

func MakeSearchEndpoint(service SearchService) SearchEndpoint {
	return SearchEndpoint{
		SearchFlights: makeParamsEndpoint("search service", service.SearchFlights),
	}
}
