package cookies

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planets-explorer/internal/shared/config"
)

func testConfig(frontend string) *config.Config {
	return &config.Config{
		Frontend: config.FrontendConfig{URL: frontend},
		Auth: config.AuthConfig{
			TokenExpiration: 2 * time.Hour,
			CookieSecure:    true,
			CookieSameSite:  "strict",
		},
	}
}

func TestSetAuthCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	SetAuthCookie(rec, testConfig("https://explorer.example.com:443"), "tok")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, AuthCookieName, c.Name)
	assert.Equal(t, "tok", c.Value)
	assert.Equal(t, 7200, c.MaxAge)
	assert.Equal(t, "explorer.example.com", c.Domain)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
}

func TestClearAuthCookie_LocalhostHasNoDomain(t *testing.T) {
	rec := httptest.NewRecorder()
	ClearAuthCookie(rec, testConfig("http://localhost:3000"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Domain)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestParseSameSite(t *testing.T) {
	assert.Equal(t, http.SameSiteNoneMode, parseSameSite("none"))
	assert.Equal(t, http.SameSiteLaxMode, parseSameSite("bogus"))
}
