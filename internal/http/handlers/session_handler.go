package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/penbot/penbot-web/internal/http/response"
	"github.com/penbot/penbot-web/internal/session"
)

// SessionService is the slice of the session service the handler
// drives.
type SessionService interface {
	Token(ctx context.Context) (string, bool)
	SetToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// SessionHandler accepts the token handed back by the OAuth redirect,
// reports session state to the UI, and handles logout. Login itself is
// delegated entirely to the external OAuth provider.
type SessionHandler struct {
	Sessions SessionService
}

func NewSessionHandler(sessions SessionService) *SessionHandler {
	return &SessionHandler{Sessions: sessions}
}

func (h *SessionHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.login)
	r.Get("/", h.inspect)
	r.Delete("/", h.logout)
	return r
}

func (h *SessionHandler) login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Token == "" {
		response.BadRequest(w, "token is required")
		return
	}

	if err := h.Sessions.SetToken(r.Context(), in.Token); err != nil {
		response.WriteError(w, http.StatusUnauthorized, "유효하지 않은 토큰입니다.", response.CodeUnauthorized)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type sessionInfo struct {
	Valid     bool       `json:"valid"`
	Host      bool       `json:"host"`
	Role      string     `json:"role,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

func (h *SessionHandler) inspect(w http.ResponseWriter, r *http.Request) {
	info := sessionInfo{}

	if token, ok := h.Sessions.Token(r.Context()); ok {
		// Token just passed the validity read; decode for display.
		if claims, err := session.DecodeClaims(token); err == nil {
			info.Valid = true
			info.Host = claims.HasRole("HOST")
			info.Role = claims.Role
			info.ExpiresAt = &claims.ExpiresAt
		}
	}

	response.WriteJSON(w, http.StatusOK, info)
}

func (h *SessionHandler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Clear(r.Context()); err != nil {
		response.InternalError(w, "로그아웃에 실패했습니다.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
