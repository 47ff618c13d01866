package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/penbot/penbot-web/internal/http/handlers"
	"github.com/penbot/penbot-web/internal/session"
)

func sessionServer(t *testing.T) (*httptest.Server, *session.Service) {
	t.Helper()
	svc := session.NewService(session.NewMemoryStore(), nil)
	t.Cleanup(svc.Close)
	srv := httptest.NewServer(handlers.NewSessionHandler(svc).Routes())
	t.Cleanup(srv.Close)
	return srv, svc
}

func hostToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp":  jwt.NewNumericDate(time.Now().Add(ttl)),
		"role": "ROLE_HOST",
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestSessionLoginInspectLogout(t *testing.T) {
	srv, _ := sessionServer(t)

	resp := postJSON(t, srv.URL+"/", map[string]string{"token": hostToken(t, time.Hour)})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	getResp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer getResp.Body.Close()

	var info struct {
		Valid bool   `json:"valid"`
		Host  bool   `json:"host"`
		Role  string `json:"role"`
	}
	require.NoError(t, json.NewDecoder(getResp.Body).Decode(&info))
	require.True(t, info.Valid)
	require.True(t, info.Host)
	require.Equal(t, "ROLE_HOST", info.Role)

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/", nil)
	delResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer delResp.Body.Close()
	require.Equal(t, http.StatusNoContent, delResp.StatusCode)

	getResp2, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer getResp2.Body.Close()
	require.NoError(t, json.NewDecoder(getResp2.Body).Decode(&info))
	require.False(t, info.Valid)
	require.False(t, info.Host)
}

func TestSessionLoginRejectsMalformedToken(t *testing.T) {
	srv, svc := sessionServer(t)

	resp := postJSON(t, srv.URL+"/", map[string]string{"token": "abc"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.False(t, svc.Valid(t.Context()))
}

func TestSessionLoginRejectsExpiredToken(t *testing.T) {
	srv, svc := sessionServer(t)

	// A dead token fails the login outright instead of being stored
	// and immediately evicted.
	resp := postJSON(t, srv.URL+"/", map[string]string{"token": hostToken(t, -time.Second)})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.False(t, svc.Valid(t.Context()))
}
