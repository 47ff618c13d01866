package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/penbot/penbot-web/internal/domain"
	"github.com/penbot/penbot-web/internal/http/response"
)

// ProfileBackend is the member-profile slice of the backend client.
type ProfileBackend interface {
	GetProfile(ctx context.Context, token string) (*domain.Profile, error)
}

// ProfileHandler serves the my-page view: the member's contact
// details and their own bookings, forwarded from the backend with the
// stored session token.
type ProfileHandler struct {
	Backend  ProfileBackend
	Sessions TokenSource
}

func NewProfileHandler(backend ProfileBackend, sessions TokenSource) *ProfileHandler {
	return &ProfileHandler{Backend: backend, Sessions: sessions}
}

func (h *ProfileHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.get)
	return r
}

func (h *ProfileHandler) get(w http.ResponseWriter, r *http.Request) {
	token, ok := h.Sessions.Token(r.Context())
	if !ok {
		response.WriteError(w, http.StatusUnauthorized, "로그인이 필요합니다.", response.CodeLoginRequired)
		return
	}

	profile, err := h.Backend.GetProfile(r.Context(), token)
	if err != nil {
		writeBackendError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, profile)
}
