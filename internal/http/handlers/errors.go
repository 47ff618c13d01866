package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/penbot/penbot-web/internal/backend"
	"github.com/penbot/penbot-web/internal/booking"
	"github.com/penbot/penbot-web/internal/http/response"
)

// writeBackendError maps a failed backend call onto the response the
// user sees. A server-provided message is surfaced verbatim with the
// server's own status; timeouts and unreachable-backend failures get
// their own distinct messages. Every failure is terminal for the
// action; the caller simply re-triggers.
func writeBackendError(w http.ResponseWriter, err error) {
	var apiErr *backend.APIError
	switch {
	case errors.Is(err, backend.ErrTimeout):
		response.WriteError(w, http.StatusGatewayTimeout,
			"응답 시간이 초과되었습니다. 잠시 후 다시 시도해 주세요.", response.CodeBackendTimeout)
	case errors.Is(err, backend.ErrNetwork):
		response.WriteError(w, http.StatusBadGateway,
			"네트워크 연결을 확인해 주세요.", response.CodeBackendUnreachable)
	case errors.As(err, &apiErr):
		msg := apiErr.Message
		if msg == "" {
			msg = fmt.Sprintf("서버 오류가 발생했습니다. (%d)", apiErr.Status)
		}
		response.WriteError(w, apiErr.Status, msg, response.CodeBackendRejected)
	default:
		response.InternalError(w, "일시적인 오류가 발생했습니다. 잠시 후 다시 시도해 주세요.")
	}
}

// writeBookingError maps the booking flow's client-side rejections.
func writeBookingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, booking.ErrNoSelection):
		response.BadRequest(w, "날짜를 선택해주세요.")
	case errors.Is(err, booking.ErrHeadcount):
		response.BadRequest(w, "투숙객 수를 선택하세요. (6명~15명)")
	case errors.Is(err, booking.ErrLoginRequired):
		response.WriteError(w, http.StatusUnauthorized, "로그인이 필요합니다.", response.CodeLoginRequired)
	case errors.Is(err, booking.ErrSubmitInFlight):
		response.WriteError(w, http.StatusConflict, "예약 요청을 처리 중입니다.", response.CodeSubmitInFlight)
	default:
		writeBackendError(w, err)
	}
}
