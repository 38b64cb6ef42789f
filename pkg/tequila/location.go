package tequila

import (
	"context"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/tequila-client/internal/pkg/transport/httpclient"
)

const (
	pathLocationsQuery           = "locations/query"
	pathLocationsRadius          = "locations/radius"
	pathLocationsBox             = "locations/box"
	pathLocationsID              = "locations/id"
	pathLocationsDump            = "locations/dump"
	pathLocationsTopDestinations = "locations/topdestinations"
	pathLocationsHashtag         = "locations/hashtag"
	pathLocationsTopHashtags     = "locations/tophashtags"
	pathLocationsSlug            = "locations/slug"
)

// LocationService wraps the Locations API. Every method is a GET with the
// parameters sent as the query string.
type LocationService struct {
	query endpoint.Endpoint
}

func newLocationService(transport *httpclient.Client) *LocationService {
	return &LocationService{
		query: jsonEndpoint[LocationQueryResult](transport),
	}
}

// SearchByQuery suggests locations for a possibly incomplete name or code.
func (s *LocationService) SearchByQuery(ctx context.Context, params SearchByQueryParams) (LocationQueryResult, error) {
	return s.get(ctx, pathLocationsQuery, params)
}

func (s *LocationService) SearchByRadius(ctx context.Context, params SearchByRadiusParams) (LocationQueryResult, error) {
	return s.get(ctx, pathLocationsRadius, params)
}

func (s *LocationService) SearchByBox(ctx context.Context, params SearchByBoxParams) (LocationQueryResult, error) {
	return s.get(ctx, pathLocationsBox, params)
}

func (s *LocationService) SearchByID(ctx context.Context, params SearchByIDParams) (LocationQueryResult, error) {
	return s.get(ctx, pathLocationsID, params)
}

// GetDump returns one page of the full dataset. Feed the SearchAfter cursor
// of a result into the next call to continue.
func (s *LocationService) GetDump(ctx context.Context, params GetDumpParams) (LocationQueryResult, error) {
	return s.get(ctx, pathLocationsDump, params)
}

func (s *LocationService) SearchTopDestinations(ctx context.Context, params TopDestinationsParams) (LocationQueryResult, error) {
	return s.get(ctx, pathLocationsTopDestinations, params)
}

func (s *LocationService) SearchByHashtag(ctx context.Context, params SearchByHashtagParams) (LocationQueryResult, error) {
	return s.get(ctx, pathLocationsHashtag, params)
}

func (s *LocationService) SearchTopHashtags(ctx context.Context, params TopHashtagsParams) (LocationQueryResult, error) {
	return s.get(ctx, pathLocationsTopHashtags, params)
}

func (s *LocationService) SearchBySlug(ctx context.Context, params SearchBySlugParams) (LocationQueryResult, error) {
	return s.get(ctx, pathLocationsSlug, params)
}

func (s *LocationService) get(ctx context.Context, path string, params interface{}) (LocationQueryResult, error) {
	req, err := encodeQuery(path, params)
	if err != nil {
		return LocationQueryResult{}, err
	}

	return call[LocationQueryResult](ctx, s.query, req)
}
