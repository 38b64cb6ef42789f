package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/ijalalfrz/tequila-client/internal/pkg/exception"
)

type binder[T any] interface {
	*T
	render.Binder
}

// MakeHandlerFunc serves ep over HTTP, encoding failures with ErrorResponse.
func MakeHandlerFunc(
	ep endpoint.Endpoint,
	dec kithttp.DecodeRequestFunc,
	enc kithttp.EncodeResponseFunc,
	options ...kithttp.ServerOption,
) http.HandlerFunc {
	opts := append([]kithttp.ServerOption{
		kithttp.ServerErrorEncoder(ErrorResponse),
	}, options...)

	return kithttp.NewServer(ep, dec, enc, opts...).ServeHTTP
}

// DecodeRequest decodes the JSON body into a new T and binds it.
func DecodeRequest[T any, PT binder[T]](_ context.Context, r *http.Request) (interface{}, error) {
	req := PT(new(T))

	if err := render.Bind(r, req); err != nil {
		return nil, badRequest(err)
	}

	return req, nil
}

// DecodeParams binds a new T from the URL and headers only, for routes
// without a body.
func DecodeParams[T any, PT binder[T]](_ context.Context, r *http.Request) (interface{}, error) {
	req := PT(new(T))

	if err := req.Bind(r); err != nil {
		return nil, badRequest(err)
	}

	return req, nil
}

func badRequest(err error) error {
	var appErr exception.ApplicationError
	if errors.As(err, &appErr) {
		return appErr
	}

	return exception.ApplicationError{
		StatusCode: http.StatusBadRequest,
		Message:    "invalid request body",
		Cause:      err,
	}
}
