package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty" swaggertype:"object"`
}

func SendJSONErr(ctx context.Context, w http.ResponseWriter, code int, originErr error, msgToSend string) {
	SendJSONErrDetails(ctx, w, code, originErr, msgToSend, nil)
}

func SendJSONErrDetails(ctx context.Context, w http.ResponseWriter, code int, originErr error, msgToSend string, details any) {
	if originErr != nil {
		slog.ErrorContext(ctx, "api error", "error", originErr.Error())
	} else {
		slog.ErrorContext(ctx, "api error", "error", msgToSend)
	}

	SendJSON(ctx, w, code, ErrorResponse{Error: msgToSend, Details: details})
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}
