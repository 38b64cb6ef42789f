//go:build unit

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ijalalfrz/tequila-client/internal/pkg/exception"
	"github.com/ijalalfrz/tequila-client/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoRequest struct {
	Term   string `json:"term"`
	Header string `json:"-"`
}

func (r *echoRequest) Bind(req *http.Request) error {
	if r.Term == "fail" {
		return exception.ApplicationError{StatusCode: http.StatusBadRequest, Message: "term is invalid"}
	}

	r.Header = req.Header.Get("X-Test")

	return nil
}

func TestMakeHandlerFunc(t *testing.T) {
	echo := func(_ context.Context, req interface{}) (interface{}, error) {
		return req, nil
	}

	handler := MakeHandlerFunc(echo, DecodeRequest[echoRequest], ResponseWithBody)

	serve := func(body string, wantStatus int, wantBody string) func(t *testing.T) {
		return func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-Test", "yes")

			rec := httptest.NewRecorder()
			handler(rec, req)

			assert.Equal(t, wantStatus, rec.Code)
			assert.JSONEq(t, wantBody, rec.Body.String())
		}
	}

	t.Run("decoded", serve(`{"term":"PRG"}`, http.StatusOK, `{"term":"PRG"}`))
	t.Run("bind_error", serve(`{"term":"fail"}`, http.StatusBadRequest, `{"error":"term is invalid"}`))
	t.Run("malformed", serve(`{"term":`, http.StatusBadRequest,
		`{"error":"invalid request body: unexpected EOF"}`))
}

func TestDecodeParams(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Test", "yes")

	got, err := DecodeParams[echoRequest](context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, &echoRequest{Header: "yes"}, got)
}

func TestBadRequest(t *testing.T) {
	appErr := exception.ApplicationError{StatusCode: http.StatusUnprocessableEntity, Message: "nope"}
	assert.Equal(t, appErr, badRequest(appErr))

	err := badRequest(errors.New("EOF"))

	var got exception.ApplicationError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, http.StatusBadRequest, got.StatusCode)
	assert.Equal(t, "invalid request body: EOF", got.Error())
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = logger.RequestID(r.Context())
	}))

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(requestIDHeader))
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestIDHeader, "req-1")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "req-1", seen)
		assert.Equal(t, "req-1", rec.Header().Get(requestIDHeader))
	})
}
