package cookies

import (
	"net/http"
	"net/url"
	"strings"

	"planets-explorer/internal/shared/config"
)

const (
	AuthCookieName  = "auth_token"
	StateCookieName = "oauth_state"
)

func SetAuthCookie(w http.ResponseWriter, cfg *config.Config, token string) {
	cookie := createCookie(cfg, AuthCookieName)
	cookie.Value = token
	cookie.MaxAge = int(cfg.Auth.TokenExpiration.Seconds())

	http.SetCookie(w, cookie)
}

func ClearAuthCookie(w http.ResponseWriter, cfg *config.Config) {
	cookie := createCookie(cfg, AuthCookieName)
	cookie.Value = ""
	cookie.MaxAge = -1

	http.SetCookie(w, cookie)
}

// SetStateCookie binds an OAuth state to the browser that started the flow.
func SetStateCookie(w http.ResponseWriter, cfg *config.Config, state string, maxAgeSeconds int) {
	cookie := createCookie(cfg, StateCookieName)
	cookie.Value = state
	cookie.MaxAge = maxAgeSeconds

	http.SetCookie(w, cookie)
}

func ClearStateCookie(w http.ResponseWriter, cfg *config.Config) {
	cookie := createCookie(cfg, StateCookieName)
	cookie.MaxAge = -1

	http.SetCookie(w, cookie)
}

func createCookie(cfg *config.Config, name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Path:     "/",
		Domain:   extractDomain(cfg.Frontend.URL),
		HttpOnly: true,
		Secure:   cfg.Auth.CookieSecure,
		SameSite: parseSameSite(cfg.Auth.CookieSameSite),
	}
}

func extractDomain(frontendURL string) string {
	parsedURL, err := url.Parse(frontendURL)
	if err != nil || parsedURL.Host == "" {
		return ""
	}

	host := parsedURL.Hostname()
	if host == "localhost" || host == "127.0.0.1" {
		return ""
	}

	return host
}

func parseSameSite(sameSiteStr string) http.SameSite {
	switch strings.ToLower(sameSiteStr) {
	case "strict":
		return http.SameSiteStrictMode
	case "lax":
		return http.SameSiteLaxMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
