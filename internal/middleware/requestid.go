package middleware

import (
	"context"
	"net/http"

	"github.com/lucsky/cuid"
)

// RequestIDHeader is the header the request ID is read from and echoed on.
const RequestIDHeader = "X-Request-ID"

// requestIDKey is the context key the request ID is stored under. The
// logging package looks the value up by the same key when building
// request-scoped loggers.
const requestIDKey = "request_id"

// RequestIDMiddleware assigns every request a cuid, honoring an incoming
// X-Request-ID so upstream proxies can correlate their own logs.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = cuid.New()
		}

		w.Header().Set(RequestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), requestIDKey, requestID) //nolint:staticcheck // key shared with the logging package
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext returns the request ID assigned by
// RequestIDMiddleware, or "" when none is present.
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}
