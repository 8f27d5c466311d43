package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"planets-explorer/internal/shared/config"
)

func newProvider() *GitHubProvider {
	return NewGitHubProvider(config.GitHubOAuthConfig{
		ClientID:     "client",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost:8080/auth/github/callback",
		Scopes:       []string{"read:user"},
	})
}

func TestGitHubProvider_AuthURL(t *testing.T) {
	p := newProvider()

	u, err := url.Parse(p.GetAuthURL("abc"))
	require.NoError(t, err)
	assert.Equal(t, "github.com", u.Host)
	assert.Equal(t, "abc", u.Query().Get("state"))
	assert.Equal(t, "client", u.Query().Get("client_id"))
	assert.Equal(t, "read:user", u.Query().Get("scope"))
	assert.Equal(t, "github", p.Name())
}

func TestGitHubProvider_GetUserInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 7, "login": "nova", "name": "", "avatar_url": "https://a/7"}`))
	}))
	defer srv.Close()

	p := newProvider()
	p.userURL = srv.URL

	user, err := p.GetUserInfo(context.Background(), &oauth2.Token{AccessToken: "tok", TokenType: "Bearer"})
	require.NoError(t, err)
	assert.Equal(t, "7", user.ID)
	assert.Equal(t, "nova", user.Name)
	assert.Equal(t, "https://a/7", user.AvatarURL)
}

func TestGitHubProvider_GetUserInfoErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	p := newProvider()
	p.userURL = srv.URL

	_, err := p.GetUserInfo(context.Background(), &oauth2.Token{AccessToken: "tok"})
	assert.Error(t, err)
}
