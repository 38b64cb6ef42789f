package locationcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/ijalalfrz/tequila-client/pkg/tequila"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by Get when nothing is cached under the key.
var ErrCacheMiss = errors.New("location cache miss")

type RedisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// LocationCache stores location lookup results in Redis, keyed by the lookup
// kind and its encoded parameters.
type LocationCache struct {
	redis RedisClient
}

func NewLocationCache(redis RedisClient) *LocationCache {
	return &LocationCache{
		redis: redis,
	}
}

func (c *LocationCache) GetCacheKey(op string, params interface{}) (string, error) {
	digest, err := paramsDigest(params)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("location:cache:%s:%s", op, digest), nil
}

func (c *LocationCache) GetLockKey(op string, params interface{}) (string, error) {
	digest, err := paramsDigest(params)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("location:lock:%s:%s", op, digest), nil
}

func (c *LocationCache) AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error) {
	return c.redis.SetNX(ctx, key, "1", timeout).Result()
}

func (c *LocationCache) ReleaseLock(ctx context.Context, key string) error {
	return c.redis.Del(ctx, key).Err()
}

func (c *LocationCache) Set(ctx context.Context,
	key string,
	result tequila.LocationQueryResult,
	expiration time.Duration,
) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal locations: %w", err)
	}

	if err := c.redis.Set(ctx, key, data, expiration).Err(); err != nil {
		return fmt.Errorf("failed to set locations: %w", err)
	}

	return nil
}

func (c *LocationCache) Get(ctx context.Context, key string) (tequila.LocationQueryResult, error) {
	data, err := c.redis.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return tequila.LocationQueryResult{}, ErrCacheMiss
	}

	if err != nil {
		return tequila.LocationQueryResult{}, fmt.Errorf("failed to get locations: %w", err)
	}

	var result tequila.LocationQueryResult
	if err := json.Unmarshal(data, &result); err != nil {
		return tequila.LocationQueryResult{}, fmt.Errorf("failed to unmarshal locations: %w", err)
	}

	return result, nil
}

// paramsDigest hashes the query string the parameters encode to. Encoded
// keys are sorted, so equal parameters always give the same digest.
func paramsDigest(params interface{}) (string, error) {
	values, err := query.Values(params)
	if err != nil {
		return "", fmt.Errorf("failed to encode params: %w", err)
	}

	sum := sha256.Sum256([]byte(values.Encode()))

	return hex.EncodeToString(sum[:16]), nil
}
