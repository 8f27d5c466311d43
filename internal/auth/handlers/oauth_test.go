package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"planets-explorer/internal/auth"
	"planets-explorer/internal/auth/providers"
	"planets-explorer/internal/middleware"
	"planets-explorer/internal/shared/config"
	"planets-explorer/internal/shared/cookies"
)

type fakeProvider struct {
	exchangeErr error
}

func (p *fakeProvider) Name() string { return "github" }

func (p *fakeProvider) GetAuthURL(state string) string {
	return "https://github.com/login/oauth/authorize?state=" + url.QueryEscape(state)
}

func (p *fakeProvider) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	if p.exchangeErr != nil {
		return nil, p.exchangeErr
	}
	return &oauth2.Token{AccessToken: "tok-" + code}, nil
}

func (p *fakeProvider) GetUserInfo(ctx context.Context, token *oauth2.Token) (*providers.OAuthUser, error) {
	return &providers.OAuthUser{ID: "7", Login: "nova", Name: "Nova"}, nil
}

type fixture struct {
	cfg     *config.Config
	tokens  *auth.TokenManager
	states  *auth.StateManager
	handler *OAuthHandler
	fake    *fakeProvider
}

func newFixture(t *testing.T, configured bool) *fixture {
	t.Helper()
	cfg := &config.Config{
		Frontend: config.FrontendConfig{URL: "http://localhost:3000"},
		Auth:     config.AuthConfig{TokenExpiration: time.Hour, CookieSameSite: "lax"},
	}
	tokens, err := auth.NewTokenManager("0123456789abcdef0123456789abcdef", time.Hour)
	require.NoError(t, err)
	states := auth.NewStateManager()
	fake := &fakeProvider{}

	return &fixture{
		cfg:     cfg,
		tokens:  tokens,
		states:  states,
		fake:    fake,
		handler: NewOAuthHandler(fake, tokens, states, cfg, configured),
	}
}

func authCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookies.AuthCookieName {
			return c
		}
	}
	return nil
}

func TestHandleAuth_NotConfigured(t *testing.T) {
	f := newFixture(t, false)

	rec := httptest.NewRecorder()
	f.handler.HandleAuth(rec, httptest.NewRequest(http.MethodGet, "/auth/github", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestOAuthFlow_IssuesSessionCookie(t *testing.T) {
	f := newFixture(t, true)

	rec := httptest.NewRecorder()
	f.handler.HandleAuth(rec, httptest.NewRequest(http.MethodGet, "/auth/github", nil))
	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)

	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	state := location.Query().Get("state")
	require.NotEmpty(t, state)

	target := fmt.Sprintf("/auth/github/callback?code=abc&state=%s", url.QueryEscape(state))
	rec = httptest.NewRecorder()
	f.handler.HandleCallback(rec, httptest.NewRequest(http.MethodGet, target, nil))

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "http://localhost:3000/auth/callback?success=true", rec.Header().Get("Location"))

	c := authCookie(rec)
	require.NotNil(t, c)
	claims, err := f.tokens.ValidateJWT(c.Value)
	require.NoError(t, err)
	assert.Equal(t, auth.Explorer{ID: "7", Username: "Nova", Provider: "github"}, claims.Explorer())
}

func TestHandleCallback_RejectsUnknownState(t *testing.T) {
	f := newFixture(t, true)

	rec := httptest.NewRecorder()
	f.handler.HandleCallback(rec, httptest.NewRequest(http.MethodGet, "/auth/github/callback?code=abc&state=forged", nil))

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "http://localhost:3000/auth/error?error=oauth_error", rec.Header().Get("Location"))
	assert.Nil(t, authCookie(rec))
}

func TestHandleCallback_Denied(t *testing.T) {
	f := newFixture(t, true)

	rec := httptest.NewRecorder()
	f.handler.HandleCallback(rec, httptest.NewRequest(http.MethodGet, "/auth/github/callback?error=access_denied", nil))

	assert.Equal(t, "http://localhost:3000/auth/error?error=oauth_denied", rec.Header().Get("Location"))
}

func TestHandleCallback_ExchangeFailure(t *testing.T) {
	f := newFixture(t, true)
	f.fake.exchangeErr = fmt.Errorf("bad code")

	state, err := f.states.GenerateState("github", "")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	f.handler.HandleCallback(rec, httptest.NewRequest(http.MethodGet, "/auth/github/callback?code=x&state="+url.QueryEscape(state), nil))

	assert.Equal(t, "http://localhost:3000/auth/error?error=oauth_error", rec.Header().Get("Location"))
	assert.Nil(t, authCookie(rec))
}

func TestSessionHandler(t *testing.T) {
	f := newFixture(t, true)
	h := NewSessionHandler(f.cfg)

	rec := httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodGet, "/auth/logout", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	c := authCookie(rec)
	require.NotNil(t, c)
	assert.Equal(t, -1, c.MaxAge)

	rec = httptest.NewRecorder()
	h.Me(rec, httptest.NewRequest(http.MethodGet, "/api/explorers/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := f.tokens.GenerateJWT(auth.Explorer{ID: "7", Username: "Nova", Provider: "github"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/explorers/me", nil)
	req.AddCookie(&http.Cookie{Name: cookies.AuthCookieName, Value: token})
	rec = httptest.NewRecorder()
	middleware.JWTMiddleware(f.tokens)(http.HandlerFunc(h.Me)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var explorer auth.Explorer
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&explorer))
	assert.Equal(t, "Nova", explorer.Username)
}
