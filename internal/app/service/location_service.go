package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ijalalfrz/tequila-client/internal/app/dto"
	"github.com/ijalalfrz/tequila-client/internal/pkg/locationcache"
	"github.com/ijalalfrz/tequila-client/pkg/tequila"
)

// LocationAPI is the part of tequila.LocationService used by the gateway.
type LocationAPI interface {
	SearchByQuery(ctx context.Context, params tequila.SearchByQueryParams) (tequila.LocationQueryResult, error)
	SearchByRadius(ctx context.Context, params tequila.SearchByRadiusParams) (tequila.LocationQueryResult, error)
	SearchByBox(ctx context.Context, params tequila.SearchByBoxParams) (tequila.LocationQueryResult, error)
	SearchByID(ctx context.Context, params tequila.SearchByIDParams) (tequila.LocationQueryResult, error)
	GetDump(ctx context.Context, params tequila.GetDumpParams) (tequila.LocationQueryResult, error)
	SearchTopDestinations(ctx context.Context, params tequila.TopDestinationsParams) (tequila.LocationQueryResult, error)
	SearchByHashtag(ctx context.Context, params tequila.SearchByHashtagParams) (tequila.LocationQueryResult, error)
	SearchTopHashtags(ctx context.Context, params tequila.TopHashtagsParams) (tequila.LocationQueryResult, error)
	SearchBySlug(ctx context.Context, params tequila.SearchBySlugParams) (tequila.LocationQueryResult, error)
}

type LocationCacher interface {
	GetCacheKey(op string, params interface{}) (string, error)
	GetLockKey(op string, params interface{}) (string, error)
	AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key string) error
	Get(ctx context.Context, key string) (tequila.LocationQueryResult, error)
	Set(ctx context.Context, key string, result tequila.LocationQueryResult, expiration time.Duration) error
}

// LocationService serves location lookups from the cache and falls back to
// the Tequila API. Dump pages are never cached.
type LocationService struct {
	API             LocationAPI
	Cache           LocationCacher
	CacheExpiration time.Duration
	LockTimeout     time.Duration
}

func NewLocationService(api LocationAPI, cache LocationCacher,
	cacheExpiration time.Duration, lockTimeout time.Duration) *LocationService {
	return &LocationService{
		API:             api,
		Cache:           cache,
		CacheExpiration: cacheExpiration,
		LockTimeout:     lockTimeout,
	}
}

func (s *LocationService) SearchByQuery(ctx context.Context, params tequila.SearchByQueryParams) (dto.LocationResponse, error) {
	return s.lookup(ctx, "query", params, func(ctx context.Context) (tequila.LocationQueryResult, error) {
		return s.API.SearchByQuery(ctx, params)
	})
}

func (s *LocationService) SearchByRadius(ctx context.Context, params tequila.SearchByRadiusParams) (dto.LocationResponse, error) {
	return s.lookup(ctx, "radius", params, func(ctx context.Context) (tequila.LocationQueryResult, error) {
		return s.API.SearchByRadius(ctx, params)
	})
}

func (s *LocationService) SearchByBox(ctx context.Context, params tequila.SearchByBoxParams) (dto.LocationResponse, error) {
	return s.lookup(ctx, "box", params, func(ctx context.Context) (tequila.LocationQueryResult, error) {
		return s.API.SearchByBox(ctx, params)
	})
}

func (s *LocationService) SearchByID(ctx context.Context, params tequila.SearchByIDParams) (dto.LocationResponse, error) {
	return s.lookup(ctx, "id", params, func(ctx context.Context) (tequila.LocationQueryResult, error) {
		return s.API.SearchByID(ctx, params)
	})
}

// GetDump always goes to the API; pages are large and walked once.
func (s *LocationService) GetDump(ctx context.Context, params tequila.GetDumpParams) (dto.LocationResponse, error) {
	result, err := s.API.GetDump(ctx, params)
	if err != nil {
		return dto.LocationResponse{}, err
	}

	return dto.LocationResponse{LocationQueryResult: result}, nil
}

func (s *LocationService) SearchTopDestinations(ctx context.Context, params tequila.TopDestinationsParams) (dto.LocationResponse, error) {
	return s.lookup(ctx, "topdestinations", params, func(ctx context.Context) (tequila.LocationQueryResult, error) {
		return s.API.SearchTopDestinations(ctx, params)
	})
}

func (s *LocationService) SearchByHashtag(ctx context.Context, params tequila.SearchByHashtagParams) (dto.LocationResponse, error) {
	return s.lookup(ctx, "hashtag", params, func(ctx context.Context) (tequila.LocationQueryResult, error) {
		return s.API.SearchByHashtag(ctx, params)
	})
}

func (s *LocationService) SearchTopHashtags(ctx context.Context, params tequila.TopHashtagsParams) (dto.LocationResponse, error) {
	return s.lookup(ctx, "tophashtags", params, func(ctx context.Context) (tequila.LocationQueryResult, error) {
		return s.API.SearchTopHashtags(ctx, params)
	})
}

func (s *LocationService) SearchBySlug(ctx context.Context, params tequila.SearchBySlugParams) (dto.LocationResponse, error) {
	return s.lookup(ctx, "slug", params, func(ctx context.Context) (tequila.LocationQueryResult, error) {
		return s.API.SearchBySlug(ctx, params)
	})
}

func (s *LocationService) lookup(
	ctx context.Context,
	op string,
	params interface{},
	fetch func(ctx context.Context) (tequila.LocationQueryResult, error),
) (dto.LocationResponse, error) {
	cacheKey, err := s.Cache.GetCacheKey(op, params)
	if err != nil {
		return dto.LocationResponse{}, err
	}

	cached, err := s.Cache.Get(ctx, cacheKey)
	switch {
	case err == nil:
		return dto.LocationResponse{LocationQueryResult: cached, CacheHit: true}, nil
	case errors.Is(err, locationcache.ErrCacheMiss):
		slog.DebugContext(ctx, "location cache miss", slog.String("op", op))
	default:
		slog.WarnContext(ctx, "failed to get locations from cache", slog.String("error", err.Error()))
	}

	result, err := fetch(ctx)
	if err != nil {
		return dto.LocationResponse{}, err
	}

	// empty results are returned as is but not cached so that new locations
	// show up
	if len(result.Locations) == 0 {
		return dto.LocationResponse{LocationQueryResult: result}, nil
	}

	// concurrent misses on the same lookup all hit the API, only the lock
	// holder writes the cache
	s.store(ctx, op, params, cacheKey, result)

	return dto.LocationResponse{LocationQueryResult: result}, nil
}

func (s *LocationService) store(ctx context.Context, op string, params interface{},
	cacheKey string, result tequila.LocationQueryResult) {
	lockKey, err := s.Cache.GetLockKey(op, params)
	if err != nil {
		slog.WarnContext(ctx, "failed to build location lock key", slog.String("error", err.Error()))
		return
	}

	acquired, err := s.Cache.AcquireLock(ctx, lockKey, s.LockTimeout)
	if err != nil {
		slog.WarnContext(ctx, "failed to acquire location lock", slog.String("error", err.Error()))
		return
	}

	if !acquired {
		return
	}

	defer func() {
		if err := s.Cache.ReleaseLock(ctx, lockKey); err != nil {
			slog.WarnContext(ctx, "failed to release location lock", slog.String("error", err.Error()))
		}
	}()

	if err := s.Cache.Set(ctx, cacheKey, result, s.CacheExpiration); err != nil {
		slog.WarnContext(ctx, "failed to set locations to cache", slog.String("error", err.Error()))
	}
}
