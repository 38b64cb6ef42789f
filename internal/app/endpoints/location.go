package endpoints

import (
	"context"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/tequila-client/internal/app/dto"
	"github.com/ijalalfrz/tequila-client/pkg/tequila"
)

type LocationService interface {
	SearchByQuery(ctx context.Context, params tequila.SearchByQueryParams) (dto.LocationResponse, error)
	SearchByRadius(ctx context.Context, params tequila.SearchByRadiusParams) (dto.LocationResponse, error)
	SearchByBox(ctx context.Context, params tequila.SearchByBoxParams) (dto.LocationResponse, error)
	SearchByID(ctx context.Context, params tequila.SearchByIDParams) (dto.LocationResponse, error)
	GetDump(ctx context.Context, params tequila.GetDumpParams) (dto.LocationResponse, error)
	SearchTopDestinations(ctx context.Context, params tequila.TopDestinationsParams) (dto.LocationResponse, error)
	SearchByHashtag(ctx context.Context, params tequila.SearchByHashtagParams) (dto.LocationResponse, error)
	SearchTopHashtags(ctx context.Context, params tequila.TopHashtagsParams) (dto.LocationResponse, error)
	SearchBySlug(ctx context.Context, params tequila.SearchBySlugParams) (dto.LocationResponse, error)
}

type LocationEndpoint struct {
	SearchByQuery         endpoint.Endpoint
	SearchByRadius        endpoint.Endpoint
	SearchByBox           endpoint.Endpoint
	SearchByID            endpoint.Endpoint
	GetDump               endpoint.Endpoint
	SearchTopDestinations endpoint.Endpoint
	SearchByHashtag       endpoint.Endpoint
	SearchTopHashtags     endpoint.Endpoint
	SearchBySlug          endpoint.Endpoint
}

func MakeLocationEndpoint(service LocationService) LocationEndpoint {
	return LocationEndpoint{
		SearchByQuery:         makeParamsEndpoint("location query", service.SearchByQuery),
		SearchByRadius:        makeParamsEndpoint("location radius", service.SearchByRadius),
		SearchByBox:           makeParamsEndpoint("location box", service.SearchByBox),
		SearchByID:            makeParamsEndpoint("location id", service.SearchByID),
		GetDump:               makeParamsEndpoint("location dump", service.GetDump),
		SearchTopDestinations: makeParamsEndpoint("location top destinations", service.SearchTopDestinations),
		SearchByHashtag:       makeParamsEndpoint("location hashtag", service.SearchByHashtag),
		SearchTopHashtags:     makeParamsEndpoint("location top hashtags", service.SearchTopHashtags),
		SearchBySlug:          makeParamsEndpoint("location slug", service.SearchBySlug),
	}
}
