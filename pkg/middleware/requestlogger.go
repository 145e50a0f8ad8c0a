package middleware

import (
	"log/slog"
	"net/http"

	"github.com/Fluorine7/Holylight-marine/pkg/logger"
)

// RequestLogger stores a request-scoped logger in the context, enriched with
// correlation_id, user_id, trace_id and span_id. Handlers pick it up with
// logger.FromContext.
//
// Mount after RequestLogging (correlation ID) and Tracing (span context) so
// both identifiers are present when the logger is built.
func RequestLogger(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			// The auth middleware sets the user ID for admin routes; public
			// traffic may carry it as a header from the gateway instead.
			userID := UserIDFromContext(ctx)
			if userID == "" {
				userID = r.Header.Get("X-User-ID")
			}
			if userID != "" {
				ctx = logger.WithUserID(ctx, userID)
			}

			ctx = logger.NewContext(ctx, logger.WithContext(ctx, base))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
