package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ijalalfrz/tequila-client/internal/app/dto"
	"github.com/ijalalfrz/tequila-client/internal/pkg/exception"
)

// ResponseWithBody is the common method to encode all response types to the client.
func ResponseWithBody(_ context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("encode response body: %w", err)
	}

	return nil
}

func NoContentResponse(_ context.Context, w http.ResponseWriter, _ interface{}) error {
	w.WriteHeader(http.StatusNoContent)

	return nil
}

// ErrorResponse encodes the error response to the client. Application errors
// keep their status code, except upstream 5xx which become 502. Anything else
// is a 500.
func ErrorResponse(ctx context.Context, err error, respWriter http.ResponseWriter) {
	var (
		appErr exception.ApplicationError
		status int
		resp   dto.ErrorResponse
	)

	if errors.As(err, &appErr) {
		status = appErr.StatusCode
		resp.Error = appErr.Error()

		if appErr.IsRemote() {
			if status >= http.StatusInternalServerError {
				status = http.StatusBadGateway
			}

			if json.Valid(appErr.Body) {
				resp.Details = appErr.Body
			}

			slog.WarnContext(ctx, "tequila request failed",
				slog.Int("upstream_status", appErr.StatusCode),
				slog.String("error", err.Error()))
		}
	} else {
		status = http.StatusInternalServerError
		resp.Error = err.Error()

		slog.ErrorContext(ctx, resp.Error, slog.Any("error", err))
	}

	respWriter.Header().Set("Content-Type", "application/json; charset=utf-8")
	respWriter.WriteHeader(status)

	//nolint:errcheck,errchkjson
	json.NewEncoder(respWriter).Encode(resp)
}
