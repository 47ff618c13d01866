package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/penbot/penbot-web/internal/http/handlers"
)

func TestGridEndpoint(t *testing.T) {
	h := handlers.NewCalendarHandler()
	srv := httptest.NewServer(h.Routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/?year=2025&month=8")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Year  int `json:"year"`
		Month int `json:"month"`
		Cells []struct {
			Date    string `json:"date"`
			InMonth bool   `json:"inMonth"`
		} `json:"cells"`
		PrevMonth int `json:"prevMonth"`
		NextMonth int `json:"nextMonth"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	require.Equal(t, 2025, out.Year)
	require.Equal(t, 8, out.Month)
	require.Len(t, out.Cells, 42)
	// August 2025 starts on a Friday: five July cells lead the grid.
	require.Equal(t, "2025-07-27", out.Cells[0].Date)
	require.False(t, out.Cells[0].InMonth)
	require.Equal(t, "2025-08-01", out.Cells[5].Date)
	require.True(t, out.Cells[5].InMonth)
	require.Equal(t, 7, out.PrevMonth)
	require.Equal(t, 9, out.NextMonth)
}

func TestGridEndpointRejectsBadMonth(t *testing.T) {
	h := handlers.NewCalendarHandler()
	srv := httptest.NewServer(h.Routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/?year=2025&month=13")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReplaySelection(t *testing.T) {
	h := handlers.NewCalendarHandler()
	srv := httptest.NewServer(h.Routes())
	defer srv.Close()

	// Click dates far in the future so "today" never disables them.
	body, _ := json.Marshal(map[string]interface{}{
		"year":   2099,
		"month":  8,
		"clicks": []string{"2099-08-10", "2099-08-13"},
	})
	resp, err := http.Post(srv.URL+"/selection", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		StartDate *string `json:"startDate"`
		EndDate   *string `json:"endDate"`
		Display   string  `json:"display"`
		Cells     []struct {
			Date    string `json:"date"`
			Start   bool   `json:"start"`
			End     bool   `json:"end"`
			InRange bool   `json:"inRange"`
		} `json:"cells"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	require.NotNil(t, out.StartDate)
	require.Equal(t, "2099-08-10", *out.StartDate)
	require.NotNil(t, out.EndDate)
	require.Equal(t, "2099-08-13", *out.EndDate)
	require.Equal(t, "8월 10일 ~ 8월 13일 (3박)", out.Display)

	marks := map[string]struct{ start, end, in bool }{}
	for _, c := range out.Cells {
		marks[c.Date] = struct{ start, end, in bool }{c.Start, c.End, c.InRange}
	}
	require.True(t, marks["2099-08-10"].start)
	require.True(t, marks["2099-08-13"].end)
	require.True(t, marks["2099-08-11"].in)
	require.True(t, marks["2099-08-12"].in)
	require.False(t, marks["2099-08-14"].in)
}

func TestReplaySelectionIgnoresPastClicks(t *testing.T) {
	h := handlers.NewCalendarHandler()
	srv := httptest.NewServer(h.Routes())
	defer srv.Close()

	body, _ := json.Marshal(map[string]interface{}{
		"clicks": []string{"2001-01-05"},
	})
	resp, err := http.Post(srv.URL+"/selection", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out struct {
		StartDate *string `json:"startDate"`
		Display   string  `json:"display"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Nil(t, out.StartDate)
	require.Equal(t, "날짜를 선택해주세요", out.Display)
}
