package testutil

import (
	"context"
	"net/http"
	"time"

	"billsplit/pkg/requestcontext"
)

// AtTime pins the request-scoped clock, the way the requesttime middleware
// does for live requests.
func AtTime(ctx context.Context, t time.Time) context.Context {
	return requestcontext.WithTime(ctx, t)
}

// WithRequestTime pins the request-scoped clock on req.
func WithRequestTime(req *http.Request, t time.Time) *http.Request {
	return req.WithContext(AtTime(req.Context(), t))
}

// WithRequestID adds a request ID to the request context.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}
