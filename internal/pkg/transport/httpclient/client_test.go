package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/ijalalfrz/tequila-client/internal/pkg/exception"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoResponse struct {
	Path   string `json:"path"`
	Query  string `json:"query"`
	Header string `json:"header"`
	Body   string `json:"body"`
}

func TestClient_Endpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		switch r.URL.Path {
		case "/api/fail":
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"error":"invalid"}`))
		case "/api/empty":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(echoResponse{
				Path:   r.URL.Path,
				Query:  r.URL.RawQuery,
				Header: r.Header.Get("X-Custom"),
				Body:   string(body),
			})
		}
	}))
	defer server.Close()

	client, err := New(Config{
		BaseURL: server.URL + "/api",
		Headers: map[string]string{"x-custom": "default"},
	})
	require.NoError(t, err)
	assert.Equal(t, server.URL+"/api/", client.BaseURL())

	echo := client.Endpoint(DecodeJSONResponse[echoResponse])

	endpointRequest := func(req Request, want echoResponse) func(t *testing.T) {
		return func(t *testing.T) {
			got, err := echo(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	}

	t.Run("default_headers", endpointRequest(Request{
		Method: http.MethodGet,
		Path:   "things",
		Query:  url.Values{"a": {"1"}},
	}, echoResponse{Path: "/api/things", Query: "a=1", Header: "default"}))

	t.Run("per_call_header_overrides", endpointRequest(Request{
		Method: http.MethodPost,
		Path:   "things",
		Body:   map[string]int{"n": 1},
		Header: http.Header{"X-Custom": {"call"}},
	}, echoResponse{Path: "/api/things", Header: "call", Body: `{"n":1}`}))

	t.Run("non_2xx", func(t *testing.T) {
		_, err := echo(context.Background(), Request{Method: http.MethodGet, Path: "fail"})

		var appErr exception.ApplicationError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusUnprocessableEntity, appErr.StatusCode)
		assert.Equal(t, `{"error":"invalid"}`, string(appErr.Body))
		assert.Equal(t, `tequila responded with status 422: {"error":"invalid"}`, appErr.Message)
	})

	t.Run("empty_body", endpointRequest(Request{Method: http.MethodDelete, Path: "empty"}, echoResponse{}))

	t.Run("wrong_request_type", func(t *testing.T) {
		_, err := echo(context.Background(), "things")
		assert.ErrorContains(t, err, "unexpected request type")
	})
}

func TestNew_InvalidBaseURL(t *testing.T) {
	_, err := New(Config{BaseURL: "/relative"})
	assert.ErrorIs(t, err, ErrInvalidBaseURL)
}

func TestRemoteErrorMessage(t *testing.T) {
	long := make([]byte, 600)
	for i := range long {
		long[i] = 'x'
	}

	msg := remoteErrorMessage(http.StatusInternalServerError, long)
	assert.Equal(t, "tequila responded with status 500: "+string(long[:512])+"...", msg)
	assert.Equal(t, "tequila responded with status 500", remoteErrorMessage(http.StatusInternalServerError, nil))
}
