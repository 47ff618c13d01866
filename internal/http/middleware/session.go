package middleware

import (
	"context"
	"net/http"

	"github.com/penbot/penbot-web/internal/http/response"
)

// Sessions is the slice of the session service the guards read. State
// is re-read per request; nothing here caches a token.
type Sessions interface {
	Valid(ctx context.Context) bool
	HasRole(ctx context.Context, role string) bool
}

// HostRole is the elevated role that manages bookings, blocked dates,
// and users.
const HostRole = "HOST"

// RequireSession rejects requests while no valid (non-expired) session
// token is stored. The backend still enforces authorization on every
// forwarded call; this only keeps obviously dead sessions from
// reaching it.
func RequireSession(sessions Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sessions.Valid(r.Context()) {
				response.WriteError(w, http.StatusUnauthorized, "로그인이 필요합니다.", response.CodeLoginRequired)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireHost additionally demands the HOST role claim.
func RequireHost(sessions Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sessions.Valid(r.Context()) {
				response.WriteError(w, http.StatusUnauthorized, "로그인이 필요합니다.", response.CodeLoginRequired)
				return
			}
			if !sessions.HasRole(r.Context(), HostRole) {
				response.Forbidden(w, "호스트 권한이 필요합니다.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
