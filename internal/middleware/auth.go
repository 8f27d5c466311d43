package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"planets-explorer/internal/auth"
	"planets-explorer/internal/shared/cookies"
	"planets-explorer/internal/shared/errors"
	"planets-explorer/internal/shared/response"
)

type contextKey string

const ExplorerContextKey contextKey = "explorer"

// JWTMiddleware rejects requests without a valid session cookie.
func JWTMiddleware(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := slog.With(
				"middleware", "jwt",
				"method", r.Method,
				"path", r.URL.Path,
			)

			cookie, err := r.Cookie(cookies.AuthCookieName)
			if err != nil {
				response.Error(w, r, logger, errors.Unauthorized("authentication required"))
				return
			}

			claims, err := tokens.ValidateJWT(cookie.Value)
			if err != nil {
				response.Error(w, r, logger, errors.Unauthorized("invalid token"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// OptionalJWT attaches claims when a valid cookie is present and lets
// anonymous requests through otherwise.
func OptionalJWT(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookies.AuthCookieName)
			if err == nil {
				if claims, err := tokens.ValidateJWT(cookie.Value); err == nil {
					r = r.WithContext(WithClaims(r.Context(), claims))
				} else {
					slog.Debug("Ignoring invalid session cookie", "middleware", "optional_jwt", "error", err)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, ExplorerContextKey, claims)
}

func ClaimsFromContext(ctx context.Context) *auth.Claims {
	if claims, ok := ctx.Value(ExplorerContextKey).(*auth.Claims); ok {
		return claims
	}
	return nil
}
