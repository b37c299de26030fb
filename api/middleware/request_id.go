package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/fleekhq/seller-finance-backend/pkg/logger"
)

const requestIDHeader = "X-Request-Id"

// RequestID tags each request for log correlation between the portal and this
// API. An id forwarded by the edge proxy is kept only when it parses as a
// UUID; anything else is replaced instead of being echoed into the logs.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := strings.TrimSpace(r.Header.Get(requestIDHeader))
			if _, err := uuid.Parse(reqID); err != nil {
				reqID = uuid.NewString()
			}

			w.Header().Set(requestIDHeader, reqID)

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithRequestID(ctx, reqID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
