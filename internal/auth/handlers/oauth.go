package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"planets-explorer/internal/auth"
	"planets-explorer/internal/auth/providers"
	"planets-explorer/internal/shared/config"
	"planets-explorer/internal/shared/cookies"
	"planets-explorer/internal/shared/errors"
	"planets-explorer/internal/shared/response"
)

const exchangeTimeout = 30 * time.Second

type OAuthHandler struct {
	provider     providers.OAuthProvider
	tokens       *auth.TokenManager
	states       *auth.StateManager
	cfg          *config.Config
	isConfigured bool
}

func NewOAuthHandler(provider providers.OAuthProvider, tokens *auth.TokenManager, states *auth.StateManager, cfg *config.Config, isConfigured bool) *OAuthHandler {
	return &OAuthHandler{
		provider:     provider,
		tokens:       tokens,
		states:       states,
		cfg:          cfg,
		isConfigured: isConfigured,
	}
}

func (h *OAuthHandler) HandleAuth(w http.ResponseWriter, r *http.Request) {
	name := h.provider.Name()
	logger := slog.With("handler", name+"_oauth_init")

	if !h.isConfigured {
		response.Error(w, r, logger, errors.External(fmt.Sprintf("%s OAuth is not properly configured", name)))
		return
	}

	state, err := h.states.GenerateState(name, r.UserAgent())
	if err != nil {
		response.Error(w, r, logger, errors.WrapInternal("failed to initialize OAuth flow", err))
		return
	}

	http.Redirect(w, r, h.provider.GetAuthURL(state), http.StatusTemporaryRedirect)
}

func (h *OAuthHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	name := h.provider.Name()
	query := r.URL.Query()
	code := query.Get("code")
	state := query.Get("state")

	logger := slog.With(
		"handler", name+"_oauth_callback",
		"ip", r.RemoteAddr,
		"has_code", code != "",
		"has_state", state != "",
	)

	if errorParam := query.Get("error"); errorParam != "" {
		logger.Warn("OAuth authorization denied",
			"oauth_error", errorParam,
			"error_description", query.Get("error_description"))
		h.redirectWithError(w, r, "oauth_denied")
		return
	}

	if err := h.states.ValidateState(state, name, r.UserAgent()); err != nil {
		logger.Warn("OAuth state validation failed", "error", err)
		h.redirectWithError(w, r, "oauth_error")
		return
	}

	if code == "" {
		logger.Error("OAuth callback missing authorization code")
		h.redirectWithError(w, r, "oauth_error")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), exchangeTimeout)
	defer cancel()

	token, err := h.provider.ExchangeCode(ctx, code)
	if err != nil {
		logger.Error("Failed to exchange authorization code", "error", err)
		h.redirectWithError(w, r, "oauth_error")
		return
	}

	userInfo, err := h.provider.GetUserInfo(ctx, token)
	if err != nil {
		logger.Error("Failed to get user info", "error", err)
		h.redirectWithError(w, r, "oauth_error")
		return
	}

	explorer := auth.Explorer{
		ID:        userInfo.ID,
		Username:  userInfo.Name,
		Provider:  name,
		AvatarURL: userInfo.AvatarURL,
	}

	jwtToken, err := h.tokens.GenerateJWT(explorer)
	if err != nil {
		logger.Error("Failed to generate JWT token", "error", err)
		h.redirectWithError(w, r, "auth_error")
		return
	}

	cookies.SetAuthCookie(w, h.cfg, jwtToken)

	logger.Info("OAuth authentication successful",
		"provider_user_id", explorer.ID,
		"username", explorer.Username)

	http.Redirect(w, r, h.cfg.Frontend.URL+"/auth/callback?success=true", http.StatusTemporaryRedirect)
}

func (h *OAuthHandler) redirectWithError(w http.ResponseWriter, r *http.Request, errorType string) {
	errorURL := fmt.Sprintf("%s/auth/error?error=%s", h.cfg.Frontend.URL, url.QueryEscape(errorType))
	http.Redirect(w, r, errorURL, http.StatusTemporaryRedirect)
}
