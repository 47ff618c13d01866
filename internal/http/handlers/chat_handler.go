package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/penbot/penbot-web/internal/backend"
	"github.com/penbot/penbot-web/internal/http/response"
	"github.com/penbot/penbot-web/pkg/logger"
)

// ChatBackend is the chat-proxy slice of the backend client.
type ChatBackend interface {
	AskChat(ctx context.Context, token, text string) (string, error)
}

// ChatHandler fronts the backend's language-model proxy. Failures do
// not error the chat UI: they degrade into an apologetic answer, the
// way the assistant page behaves.
type ChatHandler struct {
	Backend  ChatBackend
	Sessions TokenSource
}

func NewChatHandler(backend ChatBackend, sessions TokenSource) *ChatHandler {
	return &ChatHandler{Backend: backend, Sessions: sessions}
}

func (h *ChatHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/ask", h.ask)
	return r
}

func (h *ChatHandler) ask(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || strings.TrimSpace(in.Text) == "" {
		response.BadRequest(w, "text is required")
		return
	}

	// The token rides along when present; the assistant also answers
	// anonymous visitors with a login nudge from the backend.
	token, _ := h.Sessions.Token(r.Context())

	result, err := h.Backend.AskChat(r.Context(), token, in.Text)
	if err != nil {
		logger.ErrorContext(r.Context(), "Chat backend call failed", "error", err)
		result = chatFallback(err)
	}

	response.WriteJSON(w, http.StatusOK, map[string]string{"result": result})
}

// chatFallback picks the degraded answer per failure class.
func chatFallback(err error) string {
	var apiErr *backend.APIError
	switch {
	case errors.Is(err, backend.ErrTimeout):
		return "죄송합니다. 응답 시간이 초과되었습니다. 잠시 후 다시 시도해 주세요."
	case errors.Is(err, backend.ErrNetwork):
		return "죄송합니다. 네트워크 연결을 확인해 주세요."
	case errors.As(err, &apiErr):
		switch apiErr.Status {
		case http.StatusNotFound:
			return "죄송합니다. 챗봇 서비스를 일시적으로 사용할 수 없습니다. 잠시 후 다시 시도해 주세요."
		case http.StatusInternalServerError:
			return "죄송합니다. 서버 오류가 발생했습니다. 잠시 후 다시 시도해 주세요."
		case http.StatusUnauthorized:
			return "인증이 필요합니다. 로그인 후 다시 시도해 주세요."
		default:
			return fmt.Sprintf("서버 오류가 발생했습니다. (%d)", apiErr.Status)
		}
	default:
		return "죄송합니다. 일시적인 오류가 발생했습니다. 잠시 후 다시 시도해 주세요."
	}
}
