package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/penbot/penbot-web/internal/domain"
	"github.com/penbot/penbot-web/internal/http/response"
)

// HostBackend is the host-facing slice of the backend client.
type HostBackend interface {
	ListHostBookings(ctx context.Context, token string) ([]domain.Booking, error)
	GetHostBooking(ctx context.Context, token string, id int64) (*domain.Booking, error)
	UpdateHostBooking(ctx context.Context, token string, id int64, status domain.BookingStatus) error
	ListBlockedDates(ctx context.Context, token string) ([]domain.BlockedDate, error)
	CreateBlockedDate(ctx context.Context, token string, req domain.BlockedDateRequest) (*domain.BlockedDate, error)
	DeleteBlockedDate(ctx context.Context, token string, id int64) error
	ListUsers(ctx context.Context, token string) ([]domain.User, error)
	GetUser(ctx context.Context, token string, id int64) (*domain.User, error)
	DeleteUser(ctx context.Context, token string, id int64) error
}

// TokenSource yields the current session token for forwarded calls.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// HostHandler forwards the host dashboard's CRUD operations to the
// backend. The route guard already checked the HOST role; the backend
// enforces it again on every call.
type HostHandler struct {
	Backend  HostBackend
	Sessions TokenSource
}

func NewHostHandler(backend HostBackend, sessions TokenSource) *HostHandler {
	return &HostHandler{Backend: backend, Sessions: sessions}
}

func (h *HostHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Route("/bookings", func(r chi.Router) {
		r.Get("/", h.listBookings)
		r.Get("/{id}", h.getBooking)
		r.Put("/{id}", h.updateBooking)
	})
	r.Route("/blocks", func(r chi.Router) {
		r.Get("/", h.listBlocks)
		r.Post("/", h.createBlock)
		r.Delete("/{id}", h.deleteBlock)
	})
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.listUsers)
		r.Get("/{id}", h.getUser)
		r.Delete("/{id}", h.deleteUser)
	})
	return r
}

func (h *HostHandler) token(w http.ResponseWriter, r *http.Request) (string, bool) {
	token, ok := h.Sessions.Token(r.Context())
	if !ok {
		response.WriteError(w, http.StatusUnauthorized, "로그인이 필요합니다.", response.CodeLoginRequired)
	}
	return token, ok
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "invalid id")
		return 0, false
	}
	return id, true
}

func (h *HostHandler) listBookings(w http.ResponseWriter, r *http.Request) {
	token, ok := h.token(w, r)
	if !ok {
		return
	}
	bookings, err := h.Backend.ListHostBookings(r.Context(), token)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, bookings)
}

func (h *HostHandler) getBooking(w http.ResponseWriter, r *http.Request) {
	token, ok := h.token(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	b, err := h.Backend.GetHostBooking(r.Context(), token, id)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, b)
}

func (h *HostHandler) updateBooking(w http.ResponseWriter, r *http.Request) {
	token, ok := h.token(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var in domain.BookingStatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.BadRequest(w, "invalid json")
		return
	}
	if in.Status != domain.BookingConfirmed && in.Status != domain.BookingCancelled {
		response.BadRequest(w, "status must be 'CONFIRMED' or 'CANCELLED'")
		return
	}

	if err := h.Backend.UpdateHostBooking(r.Context(), token, id, in.Status); err != nil {
		writeBackendError(w, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, map[string]string{"message": "예약 상태가 변경되었습니다."})
}

func (h *HostHandler) listBlocks(w http.ResponseWriter, r *http.Request) {
	token, ok := h.token(w, r)
	if !ok {
		return
	}
	blocks, err := h.Backend.ListBlockedDates(r.Context(), token)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, blocks)
}

func (h *HostHandler) createBlock(w http.ResponseWriter, r *http.Request) {
	token, ok := h.token(w, r)
	if !ok {
		return
	}

	var in domain.BlockedDateRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.BadRequest(w, "invalid json")
		return
	}
	if in.StartDate == "" || in.EndDate == "" {
		response.BadRequest(w, "startDate and endDate are required")
		return
	}

	block, err := h.Backend.CreateBlockedDate(r.Context(), token, in)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	response.WriteJSON(w, http.StatusCreated, block)
}

func (h *HostHandler) deleteBlock(w http.ResponseWriter, r *http.Request) {
	token, ok := h.token(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.Backend.DeleteBlockedDate(r.Context(), token, id); err != nil {
		writeBackendError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HostHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	token, ok := h.token(w, r)
	if !ok {
		return
	}
	users, err := h.Backend.ListUsers(r.Context(), token)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, users)
}

func (h *HostHandler) getUser(w http.ResponseWriter, r *http.Request) {
	token, ok := h.token(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	u, err := h.Backend.GetUser(r.Context(), token, id)
	if err != nil {
		writeBackendError(w, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, u)
}

func (h *HostHandler) deleteUser(w http.ResponseWriter, r *http.Request) {
	token, ok := h.token(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.Backend.DeleteUser(r.Context(), token, id); err != nil {
		writeBackendError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
