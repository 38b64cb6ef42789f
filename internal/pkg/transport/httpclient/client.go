package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/ijalalfrz/tequila-client/internal/pkg/exception"
	"github.com/ijalalfrz/tequila-client/internal/pkg/logger"
)

const requestIDHeader = "X-Request-Id"

var ErrInvalidBaseURL = errors.New("base url must be absolute")

// Config for the transport bound to one API host.
type Config struct {
	BaseURL string
	// Headers are sent on every request; per-call headers override them.
	Headers    map[string]string
	Timeout    time.Duration
	HTTPClient kithttp.HTTPClient
}

// Request describes one call. Path is relative to the base URL and must be
// escaped already.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   interface{}
	Header http.Header
}

// Client issues requests against a base URL with default headers. It holds
// no per-call state and is safe for concurrent use.
type Client struct {
	baseURL *url.URL
	headers http.Header
	client  kithttp.HTTPClient
}

func New(cfg Config) (*Client, error) {
	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, cfg.BaseURL)
	}

	if !strings.HasSuffix(baseURL.Path, "/") {
		baseURL.Path += "/"
	}

	headers := make(http.Header, len(cfg.Headers))
	for key, val := range cfg.Headers {
		headers.Set(key, val)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		baseURL: baseURL,
		headers: headers,
		client:  httpClient,
	}, nil
}

// BaseURL returns the base every request path is resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Endpoint builds a go-kit client endpoint taking a Request and returning
// whatever dec produces.
func (c *Client) Endpoint(dec kithttp.DecodeResponseFunc, options ...kithttp.ClientOption) endpoint.Endpoint {
	opts := append([]kithttp.ClientOption{
		kithttp.SetClient(c.client),
		kithttp.ClientBefore(propagateRequestID),
	}, options...)

	return logging()(kithttp.NewExplicitClient(c.createRequest, dec, opts...).Endpoint())
}

func (c *Client) createRequest(ctx context.Context, request interface{}) (*http.Request, error) {
	req, ok := request.(Request)
	if !ok {
		return nil, fmt.Errorf("unexpected request type %T", request)
	}

	ref, err := url.Parse(req.Path)
	if err != nil {
		return nil, fmt.Errorf("parse path %q: %w", req.Path, err)
	}

	target := c.baseURL.ResolveReference(ref)
	if len(req.Query) > 0 {
		target.RawQuery = req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}

		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, vals := range c.headers {
		httpReq.Header[key] = append([]string(nil), vals...)
	}

	for key, vals := range req.Header {
		httpReq.Header[http.CanonicalHeaderKey(key)] = append([]string(nil), vals...)
	}

	return httpReq, nil
}

func propagateRequestID(ctx context.Context, req *http.Request) context.Context {
	if reqID := logger.RequestID(ctx); reqID != "" && req.Header.Get(requestIDHeader) == "" {
		req.Header.Set(requestIDHeader, reqID)
	}

	return ctx
}

// DecodeJSONResponse decodes a 2xx body into T. Any other status becomes an
// exception.ApplicationError carrying the status code and the raw body.
func DecodeJSONResponse[T any](_ context.Context, resp *http.Response) (interface{}, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, exception.ApplicationError{
			StatusCode: resp.StatusCode,
			Message:    remoteErrorMessage(resp.StatusCode, body),
			Body:       body,
		}
	}

	var out T
	if len(bytes.TrimSpace(body)) == 0 {
		return out, nil
	}

	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode response body: %w", err)
	}

	return out, nil
}

func remoteErrorMessage(statusCode int, body []byte) string {
	msg := fmt.Sprintf("tequila responded with status %d", statusCode)

	text := strings.TrimSpace(string(body))
	if text == "" {
		return msg
	}

	const maxLen = 512
	if len(text) > maxLen {
		text = text[:maxLen] + "..."
	}

	return msg + ": " + text
}

func logging() endpoint.Middleware {
	return func(next endpoint.Endpoint) endpoint.Endpoint {
		return func(ctx context.Context, request interface{}) (interface{}, error) {
			var method, path string
			if req, ok := request.(Request); ok {
				method, path = req.Method, req.Path
			}

			start := time.Now()
			resp, err := next(ctx, request)

			attrs := []any{
				slog.String("method", method),
				slog.String("path", path),
				slog.Duration("duration", time.Since(start)),
			}

			var appErr exception.ApplicationError
			switch {
			case errors.As(err, &appErr):
				slog.WarnContext(ctx, "tequila request rejected",
					append(attrs, slog.Int("status", appErr.StatusCode))...)
			case err != nil:
				slog.WarnContext(ctx, "tequila request failed",
					append(attrs, slog.String("error", err.Error()))...)
			default:
				slog.DebugContext(ctx, "tequila request done", attrs...)
			}

			return resp, err
		}
	}
}
