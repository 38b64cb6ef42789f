package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/tequila-client/internal/app/dto"
)

var ErrInvalidType = errors.New("invalid type")

// Endpoints groups the gateway endpoints by Tequila facade.
type Endpoints struct {
	Location LocationEndpoint
	Search   SearchEndpoint
	Booking  BookingEndpoint
	Manage   ManageEndpoint
}

// makeParamsEndpoint adapts a service method taking the decoded parameters
// of a dto.Request.
func makeParamsEndpoint[P, R any](name string, call func(ctx context.Context, params P) (R, error)) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.Request[P])
		if !ok || request == nil {
			return nil, ErrInvalidType
		}

		resp, err := call(ctx, request.Params)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		return resp, nil
	}
}
