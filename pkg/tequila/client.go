package tequila

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-kit/kit/endpoint"
	"github.com/google/go-querystring/query"
	"github.com/ijalalfrz/tequila-client/internal/pkg/transport/httpclient"
)

// DefaultBaseURL is used when Config.BaseURL is empty.
const DefaultBaseURL = "https://api.tequila.kiwi.com"

const (
	headerAPIKey    = "Apikey"
	headerAuthToken = "KW-Auth-Token"
)

var ErrMissingAPIKey = errors.New("tequila: api key is required")

// HTTPDoer is the part of *http.Client used by the client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds the settings shared by every facade.
type Config struct {
	APIKey string
	// BaseURL defaults to DefaultBaseURL.
	BaseURL string
	// AuthToken is the KW-Auth-Token required by the Manage facade only.
	AuthToken string
	// Timeout of the default HTTP client. Ignored when HTTPClient is set.
	Timeout    time.Duration
	HTTPClient HTTPDoer
}

// Client groups the four facades of the Tequila API. It is immutable and
// safe for concurrent use.
type Client struct {
	config   Config
	location *LocationService
	search   *SearchService
	booking  *BookingService
	manage   *ManageService
}

// New validates the configuration and builds every facade.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	transport, err := newTransport(cfg, map[string]string{headerAPIKey: cfg.APIKey})
	if err != nil {
		return nil, err
	}

	manageHeaders := map[string]string{headerAPIKey: cfg.APIKey}
	if cfg.AuthToken != "" {
		manageHeaders[headerAuthToken] = cfg.AuthToken
	}

	manageTransport, err := newTransport(cfg, manageHeaders)
	if err != nil {
		return nil, err
	}

	return &Client{
		config:   cfg,
		location: newLocationService(transport),
		search:   newSearchService(transport),
		booking:  newBookingService(transport),
		manage:   newManageService(manageTransport),
	}, nil
}

func newTransport(cfg Config, headers map[string]string) (*httpclient.Client, error) {
	transportCfg := httpclient.Config{
		BaseURL: cfg.BaseURL,
		Headers: headers,
		Timeout: cfg.Timeout,
	}

	if cfg.HTTPClient != nil {
		transportCfg.HTTPClient = cfg.HTTPClient
	}

	transport, err := httpclient.New(transportCfg)
	if err != nil {
		return nil, fmt.Errorf("tequila: %w", err)
	}

	return transport, nil
}

// WithAuthToken returns a new client that sends token on management calls.
// Use it after ManageService.CreateAuthToken.
func (c *Client) WithAuthToken(token string) (*Client, error) {
	cfg := c.config
	cfg.AuthToken = token

	return New(cfg)
}

// BaseURL returns the resolved API base URL.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

func (c *Client) Location() *LocationService {
	return c.location
}

func (c *Client) Search() *SearchService {
	return c.search
}

func (c *Client) Booking() *BookingService {
	return c.booking
}

func (c *Client) Manage() *ManageService {
	return c.manage
}

// Int returns a pointer to v, for optional parameters.
func Int(v int) *int { return &v }

// Bool returns a pointer to v, for optional parameters.
func Bool(v bool) *bool { return &v }

// Float returns a pointer to v, for optional parameters.
func Float(v float64) *float64 { return &v }

func jsonEndpoint[T any](transport *httpclient.Client) endpoint.Endpoint {
	return transport.Endpoint(httpclient.DecodeJSONResponse[T])
}

func call[T any](ctx context.Context, e endpoint.Endpoint, req httpclient.Request) (T, error) {
	var zero T

	resp, err := e(ctx, req)
	if err != nil {
		return zero, fmt.Errorf("tequila %s %s: %w", req.Method, req.Path, err)
	}

	out, ok := resp.(T)
	if !ok {
		return zero, fmt.Errorf("tequila %s %s: unexpected response type %T", req.Method, req.Path, resp)
	}

	return out, nil
}

func encodeQuery(path string, params interface{}) (httpclient.Request, error) {
	values, err := query.Values(params)
	if err != nil {
		return httpclient.Request{}, fmt.Errorf("tequila %s: encode query: %w", path, err)
	}

	return httpclient.Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  values,
	}, nil
}
