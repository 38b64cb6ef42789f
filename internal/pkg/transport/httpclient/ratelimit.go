package httpclient

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/tequila-client/internal/pkg/exception"
)

// RateLimitKey is the Redis key shared by every gateway instance.
const RateLimitKey = "limit:tequila"

var ErrRateLimitExceeded = exception.ApplicationError{
	StatusCode: http.StatusTooManyRequests,
	Message:    "tequila rate limit exceeded",
}

type Limiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RateLimitedClient takes a token from the limiter before every outbound
// request. Requests above the limit never leave the process.
type RateLimitedClient struct {
	next    kithttp.HTTPClient
	limiter Limiter
	key     string
	limit   redis_rate.Limit
}

func NewRateLimitedClient(next kithttp.HTTPClient, limiter Limiter, key string,
	limit redis_rate.Limit) *RateLimitedClient {
	return &RateLimitedClient{
		next:    next,
		limiter: limiter,
		key:     key,
		limit:   limit,
	}
}

func (c *RateLimitedClient) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	res, err := c.limiter.Allow(ctx, c.key, c.limit)
	if err != nil {
		return nil, fmt.Errorf("failed to rate limit: %w", err)
	}

	if res.Allowed == 0 {
		slog.WarnContext(ctx, "tequila rate limit exceeded",
			slog.String("key", c.key),
			slog.Duration("retry_after", res.RetryAfter))
		return nil, ErrRateLimitExceeded
	}

	return c.next.Do(req)
}
