//go:build unit

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/tequila-client/internal/app/dto"
	"github.com/ijalalfrz/tequila-client/internal/pkg/exception"
	"github.com/ijalalfrz/tequila-client/internal/pkg/locationcache"
	"github.com/ijalalfrz/tequila-client/pkg/tequila"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLocationService_SearchByQuery(t *testing.T) {
	type mockField struct {
		cache *MockLocationCacher
		api   *MockLocationAPI
	}

	params := tequila.SearchByQueryParams{Term: "PRG"}
	prague := tequila.LocationQueryResult{
		Locations:        []tequila.Location{{ID: "PRG", Code: "PRG", Type: tequila.LocationTypeAirport}},
		ResultsRetrieved: 1,
	}

	searchRequest := func(
		setupMock func(m mockField),
		want dto.LocationResponse,
		wantErr error,
	) func(t *testing.T) {
		return func(t *testing.T) {
			m := mockField{
				cache: NewMockLocationCacher(t),
				api:   NewMockLocationAPI(t),
			}
			setupMock(m)

			s := NewLocationService(m.api, m.cache, time.Hour, 5*time.Second)

			got, err := s.SearchByQuery(context.Background(), params)
			if wantErr != nil {
				assert.ErrorIs(t, err, wantErr)
				return
			}

			assert.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("SearchByQuery() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("cache_hit", searchRequest(func(m mockField) {
		m.cache.On("GetCacheKey", "query", params).Return("cache-key", nil)
		m.cache.On("Get", mock.Anything, "cache-key").Return(prague, nil)
	}, dto.LocationResponse{LocationQueryResult: prague, CacheHit: true}, nil))

	t.Run("cache_miss_stores_result", searchRequest(func(m mockField) {
		m.cache.On("GetCacheKey", "query", params).Return("cache-key", nil)
		m.cache.On("Get", mock.Anything, "cache-key").Return(tequila.LocationQueryResult{}, locationcache.ErrCacheMiss)
		m.api.On("SearchByQuery", mock.Anything, params).Return(prague, nil)
		m.cache.On("GetLockKey", "query", params).Return("lock-key", nil)
		m.cache.On("AcquireLock", mock.Anything, "lock-key", 5*time.Second).Return(true, nil)
		m.cache.On("Set", mock.Anything, "cache-key", prague, time.Hour).Return(nil)
		m.cache.On("ReleaseLock", mock.Anything, "lock-key").Return(nil)
	}, dto.LocationResponse{LocationQueryResult: prague}, nil))

	t.Run("lock_held_elsewhere", searchRequest(func(m mockField) {
		m.cache.On("GetCacheKey", "query", params).Return("cache-key", nil)
		m.cache.On("Get", mock.Anything, "cache-key").Return(tequila.LocationQueryResult{}, locationcache.ErrCacheMiss)
		m.api.On("SearchByQuery", mock.Anything, params).Return(prague, nil)
		m.cache.On("GetLockKey", "query", params).Return("lock-key", nil)
		m.cache.On("AcquireLock", mock.Anything, "lock-key", 5*time.Second).Return(false, nil)
	}, dto.LocationResponse{LocationQueryResult: prague}, nil))

	t.Run("cache_unavailable", searchRequest(func(m mockField) {
		m.cache.On("GetCacheKey", "query", params).Return("cache-key", nil)
		m.cache.On("Get", mock.Anything, "cache-key").Return(tequila.LocationQueryResult{}, errors.New("connection refused"))
		m.api.On("SearchByQuery", mock.Anything, params).Return(prague, nil)
		m.cache.On("GetLockKey", "query", params).Return("lock-key", nil)
		m.cache.On("AcquireLock", mock.Anything, "lock-key", 5*time.Second).Return(false, errors.New("connection refused"))
	}, dto.LocationResponse{LocationQueryResult: prague}, nil))

	upstreamErr := exception.ApplicationError{StatusCode: 403, Message: "tequila responded with status 403", Body: []byte(`{}`)}
	t.Run("upstream_error", searchRequest(func(m mockField) {
		m.cache.On("GetCacheKey", "query", params).Return("cache-key", nil)
		m.cache.On("Get", mock.Anything, "cache-key").Return(tequila.LocationQueryResult{}, locationcache.ErrCacheMiss)
		m.api.On("SearchByQuery", mock.Anything, params).Return(tequila.LocationQueryResult{}, upstreamErr)
	}, dto.LocationResponse{}, upstreamErr))

	noLocations := tequila.LocationQueryResult{Locations: []tequila.Location{}}
	t.Run("no_locations_returned_uncached", searchRequest(func(m mockField) {
		m.cache.On("GetCacheKey", "query", params).Return("cache-key", nil)
		m.cache.On("Get", mock.Anything, "cache-key").Return(tequila.LocationQueryResult{}, locationcache.ErrCacheMiss)
		m.api.On("SearchByQuery", mock.Anything, params).Return(noLocations, nil)
	}, dto.LocationResponse{LocationQueryResult: noLocations}, nil))
}

func TestLocationService_GetDump_Uncached(t *testing.T) {
	api := NewMockLocationAPI(t)
	cache := NewMockLocationCacher(t)

	params := tequila.GetDumpParams{SearchAfter: []string{"PRG"}}
	page := tequila.LocationQueryResult{SearchAfter: []string{"BRQ"}}
	api.On("GetDump", mock.Anything, params).Return(page, nil)

	got, err := NewLocationService(api, cache, time.Hour, time.Second).GetDump(context.Background(), params)
	assert.NoError(t, err)
	assert.Equal(t, dto.LocationResponse{LocationQueryResult: page}, got)
}

func TestLocationService_Dispatch(t *testing.T) {
	result := tequila.LocationQueryResult{Locations: []tequila.Location{{ID: "x"}}}

	dispatchRequest := func(op string, method string, params interface{},
		call func(s *LocationService) (dto.LocationResponse, error)) func(t *testing.T) {
		return func(t *testing.T) {
			api := NewMockLocationAPI(t)
			cache := NewMockLocationCacher(t)

			cache.On("GetCacheKey", op, params).Return("cache-key", nil)
			cache.On("Get", mock.Anything, "cache-key").Return(tequila.LocationQueryResult{}, locationcache.ErrCacheMiss)
			cache.On("GetLockKey", op, params).Return("lock-key", nil)
			cache.On("AcquireLock", mock.Anything, "lock-key", time.Second).Return(false, nil)
			api.On(method, mock.Anything, params).Return(result, nil)

			got, err := call(NewLocationService(api, cache, time.Hour, time.Second))
			assert.NoError(t, err)
			assert.Equal(t, result, got.LocationQueryResult)
		}
	}

	radius := tequila.SearchByRadiusParams{Term: "PRG"}
	t.Run("radius", dispatchRequest("radius", "SearchByRadius", radius, func(s *LocationService) (dto.LocationResponse, error) {
		return s.SearchByRadius(context.Background(), radius)
	}))

	box := tequila.SearchByBoxParams{LowLat: "1", LowLon: "2", HighLat: "3", HighLon: "4"}
	t.Run("box", dispatchRequest("box", "SearchByBox", box, func(s *LocationService) (dto.LocationResponse, error) {
		return s.SearchByBox(context.Background(), box)
	}))

	byID := tequila.SearchByIDParams{ID: []string{"PRG"}}
	t.Run("id", dispatchRequest("id", "SearchByID", byID, func(s *LocationService) (dto.LocationResponse, error) {
		return s.SearchByID(context.Background(), byID)
	}))

	top := tequila.TopDestinationsParams{Term: []string{"prague_cz"}}
	t.Run("topdestinations", dispatchRequest("topdestinations", "SearchTopDestinations", top, func(s *LocationService) (dto.LocationResponse, error) {
		return s.SearchTopDestinations(context.Background(), top)
	}))

	hashtag := tequila.SearchByHashtagParams{Hashtag: "beach"}
	t.Run("hashtag", dispatchRequest("hashtag", "SearchByHashtag", hashtag, func(s *LocationService) (dto.LocationResponse, error) {
		return s.SearchByHashtag(context.Background(), hashtag)
	}))

	hashtags := tequila.TopHashtagsParams{Term: []string{"prague_cz"}}
	t.Run("tophashtags", dispatchRequest("tophashtags", "SearchTopHashtags", hashtags, func(s *LocationService) (dto.LocationResponse, error) {
		return s.SearchTopHashtags(context.Background(), hashtags)
	}))

	slug := tequila.SearchBySlugParams{Term: "prague-czechia"}
	t.Run("slug", dispatchRequest("slug", "SearchBySlug", slug, func(s *LocationService) (dto.LocationResponse, error) {
		return s.SearchBySlug(context.Background(), slug)
	}))
}
