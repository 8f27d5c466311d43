package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planets-explorer/internal/auth"
	"planets-explorer/internal/shared/config"
	"planets-explorer/internal/shared/cookies"
	"planets-explorer/internal/shared/response"
)

const secret = "0123456789abcdef0123456789abcdef"

func newTokens(t *testing.T) *auth.TokenManager {
	t.Helper()
	tokens, err := auth.NewTokenManager(secret, time.Hour)
	require.NoError(t, err)
	return tokens
}

func explorerEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromContext(r.Context())
		if claims == nil {
			_, _ = w.Write([]byte("anonymous"))
			return
		}
		_, _ = w.Write([]byte(claims.Username))
	})
}

func TestRecover_ReturnsGenericBody(t *testing.T) {
	h := Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("table lookup for secret internals failed")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/planet/generate", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body response.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "internal", body.Error)
	assert.Equal(t, response.InternalMessage, body.Message)
	assert.Equal(t, http.StatusInternalServerError, body.Code)
}

func TestRecover_PassesThrough(t *testing.T) {
	rec := httptest.NewRecorder()
	Recover(explorerEcho()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTMiddleware(t *testing.T) {
	tokens := newTokens(t)
	h := JWTMiddleware(tokens)(explorerEcho())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/explorers/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/explorers/me", nil)
	req.AddCookie(&http.Cookie{Name: cookies.AuthCookieName, Value: "garbage"})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := tokens.GenerateJWT(auth.Explorer{ID: "1", Username: "nova", Provider: "github"})
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/api/explorers/me", nil)
	req.AddCookie(&http.Cookie{Name: cookies.AuthCookieName, Value: token})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "nova", rec.Body.String())
}

func TestOptionalJWT(t *testing.T) {
	tokens := newTokens(t)
	h := OptionalJWT(tokens)(explorerEcho())

	req := httptest.NewRequest(http.MethodPost, "/api/discoveries/save", nil)
	req.AddCookie(&http.Cookie{Name: cookies.AuthCookieName, Value: "garbage"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "anonymous", rec.Body.String())

	token, err := tokens.GenerateJWT(auth.Explorer{ID: "1", Username: "nova", Provider: "github"})
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodPost, "/api/discoveries/save", nil)
	req.AddCookie(&http.Cookie{Name: cookies.AuthCookieName, Value: token})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "nova", rec.Body.String())
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{Enabled: true, RequestsPerSecond: 0.001, BurstSize: 2})
	h := rl.Middleware(explorerEcho())

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/api/galaxy/generate", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	req := httptest.NewRequest(http.MethodGet, "/api/galaxy/generate", nil)
	req.RemoteAddr = "10.0.0.2:5555"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{Enabled: false, BurstSize: 0})
	rec := httptest.NewRecorder()
	rl.Middleware(explorerEcho()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.1:12345"
	req.Header.Set("X-Forwarded-For", "1.2.3.4, 5.6.7.8")

	assert.Equal(t, "192.168.1.1", getClientIP(req, false))
	assert.Equal(t, "1.2.3.4", getClientIP(req, true))
}

func TestCORS_AllowsFrontend(t *testing.T) {
	c := NewCORS(config.FrontendConfig{URL: "http://localhost:3000"})
	h := c.Middleware(explorerEcho())

	req := httptest.NewRequest(http.MethodGet, "/api/planet/generate", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/api/planet/generate", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
