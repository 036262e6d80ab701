package http

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"studyhall-api/internal/contextutil"
)

// AccountHeader carries the authenticated account id, set by the
// authenticating proxy in front of this service.
const AccountHeader = "X-Account-ID"

// LoggerMiddleware attaches a request-scoped structured logger to the
// context, tagged with a generated request id.
func LoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default().With(
			"request_id", uuid.NewString(),
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
		)
		ctx := contextutil.WithLogger(r.Context(), logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AccountMiddleware copies the account header into the request context.
// Handlers reject requests that carried none.
func AccountMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if accountID := r.Header.Get(AccountHeader); accountID != "" {
			r = r.WithContext(contextutil.WithAccountID(r.Context(), accountID))
		}
		next.ServeHTTP(w, r)
	})
}

// CORS adds CORS headers and answers preflight requests.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+AccountHeader)
		w.Header().Set("Access-Control-Max-Age", "3600")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
