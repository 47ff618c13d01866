package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/penbot/penbot-web/internal/http/middleware"
)

type stubSessions struct {
	valid bool
	role  string
}

func (s *stubSessions) Valid(context.Context) bool {
	return s.valid
}

func (s *stubSessions) HasRole(_ context.Context, role string) bool {
	return s.valid && s.role == role
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireSession(t *testing.T) {
	cases := []struct {
		name   string
		valid  bool
		status int
	}{
		{"valid session passes", true, http.StatusOK},
		{"missing session rejected", false, http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := middleware.RequireSession(&stubSessions{valid: tc.valid})(okHandler())
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			require.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestRequireHost(t *testing.T) {
	cases := []struct {
		name   string
		valid  bool
		role   string
		status int
	}{
		{"host passes", true, "HOST", http.StatusOK},
		{"guest forbidden", true, "GUEST", http.StatusForbidden},
		{"no session unauthorized", false, "", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := middleware.RequireHost(&stubSessions{valid: tc.valid, role: tc.role})(okHandler())
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			require.Equal(t, tc.status, rec.Code)
		})
	}
}
