package transport

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/samandr77/microservices/dealsync/pkg/logger"
)

// BearerRoundTripper authenticates outgoing requests with a static bearer token,
// forwards the inbound request id and logs every call.
type BearerRoundTripper struct {
	Transport http.RoundTripper
	token     string
}

func NewBearerRoundTripper(transport http.RoundTripper, token string) *BearerRoundTripper {
	return &BearerRoundTripper{Transport: transport, token: token}
}

func (b *BearerRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	// RoundTrip must not modify the caller's request.
	r = r.Clone(ctx)

	if b.token != "" {
		r.Header.Set("Authorization", "Bearer "+b.token)
	}

	reqID := logger.RequestIDFromCtx(ctx)
	if reqID != "" {
		r.Header.Set("X-Request-Id", reqID)
	}

	slog.InfoContext(ctx, "outgoing request", "request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()))

	resp, err := b.Transport.RoundTrip(r)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}

	slog.InfoContext(ctx, "incoming response",
		"response", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()),
		"status", resp.StatusCode,
	)

	return resp, nil
}
