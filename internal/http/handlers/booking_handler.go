package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/penbot/penbot-web/internal/booking"
	"github.com/penbot/penbot-web/internal/calendar"
	"github.com/penbot/penbot-web/internal/http/response"
	"github.com/penbot/penbot-web/internal/selection"
)

// BookingHandler fronts the availability check and booking submission
// flow.
type BookingHandler struct {
	Flow *booking.Service
}

func NewBookingHandler(flow *booking.Service) *BookingHandler {
	return &BookingHandler{Flow: flow}
}

func (h *BookingHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/availability", h.checkAvailability)
	r.Post("/", h.submit)
	return r
}

type stayRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate,omitempty"`
	Headcount int    `json:"headcount,omitempty"`
}

// parseRange builds the selection interval from the request. A missing
// end date means a one-night stay; an end on or before the start is
// rejected outright.
func parseRange(in stayRequest) (selection.Range, string) {
	if in.StartDate == "" {
		return selection.Range{}, "날짜를 선택해주세요."
	}
	start, err := calendar.ParseISO(in.StartDate)
	if err != nil {
		return selection.Range{}, "startDate must be a YYYY-MM-DD date"
	}

	r := selection.Range{Start: &start}
	if in.EndDate != "" {
		end, err := calendar.ParseISO(in.EndDate)
		if err != nil {
			return selection.Range{}, "endDate must be a YYYY-MM-DD date"
		}
		if !end.After(start) {
			return selection.Range{}, "endDate must be after startDate"
		}
		r.End = &end
	}
	return r, ""
}

func (h *BookingHandler) checkAvailability(w http.ResponseWriter, r *http.Request) {
	var in stayRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.BadRequest(w, "invalid json")
		return
	}

	rng, msg := parseRange(in)
	if msg != "" {
		response.BadRequest(w, msg)
		return
	}

	if err := h.Flow.CheckAvailability(r.Context(), rng); err != nil {
		writeBookingError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "예약이 가능합니다!",
	})
}

func (h *BookingHandler) submit(w http.ResponseWriter, r *http.Request) {
	var in stayRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.BadRequest(w, "invalid json")
		return
	}

	rng, msg := parseRange(in)
	if msg != "" {
		response.BadRequest(w, msg)
		return
	}

	if err := h.Flow.Submit(r.Context(), rng, in.Headcount); err != nil {
		writeBookingError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusCreated, map[string]string{
		"message":  "예약이 완료되었습니다!",
		"redirect": "/",
	})
}
