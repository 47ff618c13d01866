package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/penbot/penbot-web/internal/calendar"
	"github.com/penbot/penbot-web/internal/http/response"
	"github.com/penbot/penbot-web/internal/selection"
)

// CalendarHandler serves the month grid and replays click sequences
// through the range selector so the thin UI never re-implements
// either.
type CalendarHandler struct {
	now func() time.Time
}

func NewCalendarHandler() *CalendarHandler {
	return &CalendarHandler{now: time.Now}
}

func (h *CalendarHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.grid)
	r.Post("/selection", h.replaySelection)
	return r
}

type gridCell struct {
	Date    string `json:"date"`
	Day     int    `json:"day"`
	InMonth bool   `json:"inMonth"`
	Today   bool   `json:"today"`
	Past    bool   `json:"past"`
	Start   bool   `json:"start,omitempty"`
	End     bool   `json:"end,omitempty"`
	InRange bool   `json:"inRange,omitempty"`
}

type gridResponse struct {
	Year      int        `json:"year"`
	Month     int        `json:"month"`
	PrevYear  int        `json:"prevYear"`
	PrevMonth int        `json:"prevMonth"`
	NextYear  int        `json:"nextYear"`
	NextMonth int        `json:"nextMonth"`
	Cells     []gridCell `json:"cells"`
}

// grid renders the 42-cell month view. Defaults to the current month.
func (h *CalendarHandler) grid(w http.ResponseWriter, r *http.Request) {
	today := calendar.FromTime(h.now())

	year, month, ok := h.refMonth(r, today)
	if !ok {
		response.BadRequest(w, "year and month must be valid integers")
		return
	}

	cells := make([]gridCell, 0, calendar.GridSize)
	for _, d := range calendar.Grid(year, month) {
		cells = append(cells, gridCell{
			Date:    d.ISO(),
			Day:     d.Day,
			InMonth: d.InMonth(year, month),
			Today:   d == today,
			Past:    d.Before(today),
		})
	}

	py, pm := calendar.PrevMonth(year, month)
	ny, nm := calendar.NextMonth(year, month)
	response.WriteJSON(w, http.StatusOK, gridResponse{
		Year:      year,
		Month:     int(month),
		PrevYear:  py,
		PrevMonth: int(pm),
		NextYear:  ny,
		NextMonth: int(nm),
		Cells:     cells,
	})
}

type selectionRequest struct {
	Year   int      `json:"year"`
	Month  int      `json:"month"`
	Clicks []string `json:"clicks"`
}

type selectionResponse struct {
	StartDate *string    `json:"startDate"`
	EndDate   *string    `json:"endDate"`
	Display   string     `json:"display"`
	Cells     []gridCell `json:"cells"`
}

// replaySelection applies a click sequence to a fresh selector and
// returns the resulting range together with the annotated grid. The
// selector itself stays stateless server-side; the UI owns the click
// history.
func (h *CalendarHandler) replaySelection(w http.ResponseWriter, r *http.Request) {
	var in selectionRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.BadRequest(w, "invalid json")
		return
	}

	today := calendar.FromTime(h.now())
	year, month := in.Year, time.Month(in.Month)
	if year == 0 {
		year, month = today.Year, today.Month
	}
	if month < time.January || month > time.December {
		response.BadRequest(w, "month must be between 1 and 12")
		return
	}

	var sel selection.Selector
	for _, raw := range in.Clicks {
		d, err := calendar.ParseISO(raw)
		if err != nil {
			response.BadRequest(w, "clicks must be YYYY-MM-DD dates")
			return
		}
		sel.Click(d, today)
	}

	rng := sel.Range()
	out := selectionResponse{Display: rng.Display()}
	if rng.Start != nil {
		s := rng.Start.ISO()
		out.StartDate = &s
	}
	if rng.End != nil {
		e := rng.End.ISO()
		out.EndDate = &e
	}

	for _, d := range calendar.Grid(year, month) {
		out.Cells = append(out.Cells, gridCell{
			Date:    d.ISO(),
			Day:     d.Day,
			InMonth: d.InMonth(year, month),
			Today:   d == today,
			Past:    d.Before(today),
			Start:   sel.IsStart(d),
			End:     sel.IsEnd(d),
			InRange: sel.InRange(d),
		})
	}

	response.WriteJSON(w, http.StatusOK, out)
}

func (h *CalendarHandler) refMonth(r *http.Request, today calendar.Date) (int, time.Month, bool) {
	yearStr := r.URL.Query().Get("year")
	monthStr := r.URL.Query().Get("month")
	if yearStr == "" && monthStr == "" {
		return today.Year, today.Month, true
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return 0, 0, false
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, time.Month(month), true
}
