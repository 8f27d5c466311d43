package server

import (
	"log/slog"
	"net/http"

	"planets-explorer/internal/auth"
	authHandlers "planets-explorer/internal/auth/handlers"
	"planets-explorer/internal/auth/providers"
	"planets-explorer/internal/discovery"
	discoveryHandlers "planets-explorer/internal/discovery/handlers"
	"planets-explorer/internal/galaxy"
	galaxyHandlers "planets-explorer/internal/galaxy/handlers"
	"planets-explorer/internal/middleware"
	"planets-explorer/internal/planet"
	planetHandlers "planets-explorer/internal/planet/handlers"
	serverHandlers "planets-explorer/internal/server/handlers"
	"planets-explorer/internal/shared/config"
)

type Dependencies struct {
	Config           *config.Config
	DB               serverHandlers.Pinger
	Cache            serverHandlers.StatusReporter
	PlanetService    *planet.Service
	GalaxyService    *galaxy.Service
	DiscoveryService *discovery.Service
	Tokens           *auth.TokenManager
	States           *auth.StateManager
	RateLimiter      *middleware.RateLimiter
	OAuthProvider    providers.OAuthProvider
}

type Routes struct {
	deps   Dependencies
	logger *slog.Logger
}

func NewRoutes(deps Dependencies, logger *slog.Logger) *Routes {
	return &Routes{deps: deps, logger: logger}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := r.logger.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	deps := r.deps
	cfg := deps.Config
	mux := http.NewServeMux()

	healthHandler := serverHandlers.NewHealthHandler(deps.DB, deps.Cache)
	planetHandler := planetHandlers.NewPlanetHandler(deps.PlanetService)
	galaxyHandler := galaxyHandlers.NewGalaxyHandler(deps.GalaxyService, cfg.Generation.DefaultGalaxySize, cfg.Generation.MaxGalaxySize)
	systemHandler := galaxyHandlers.NewSystemHandler(deps.GalaxyService)
	discoveryHandler := discoveryHandlers.NewDiscoveryHandler(deps.DiscoveryService)
	sessionHandler := authHandlers.NewSessionHandler(cfg)
	oauthHandler := authHandlers.NewOAuthHandler(deps.OAuthProvider, deps.Tokens, deps.States, cfg, cfg.GitHubOAuthConfigured())

	limited := deps.RateLimiter.Middleware
	optionalJWT := middleware.OptionalJWT(deps.Tokens)
	requireJWT := middleware.JWTMiddleware(deps.Tokens)

	// Public endpoints
	mux.Handle("/api/server/health", healthHandler)

	// Generation endpoints
	mux.Handle("/api/planet/generate", limited(http.HandlerFunc(planetHandler.Generate)))
	mux.Handle("/api/galaxy/generate", limited(http.HandlerFunc(galaxyHandler.Generate)))
	mux.Handle("/api/system/generate", limited(http.HandlerFunc(systemHandler.Generate)))

	// Discoveries
	mux.Handle("/api/discoveries/save", limited(optionalJWT(http.HandlerFunc(discoveryHandler.Save))))
	mux.HandleFunc("/api/discoveries", discoveryHandler.List)
	mux.HandleFunc("/api/discoveries/{id}", discoveryHandler.Get)

	// Protected endpoints
	mux.Handle("/api/explorers/me", requireJWT(http.HandlerFunc(sessionHandler.Me)))

	// OAuth endpoints
	mux.HandleFunc("/auth/github", oauthHandler.HandleAuth)
	mux.HandleFunc("/auth/github/callback", oauthHandler.HandleCallback)
	mux.HandleFunc("/auth/logout", sessionHandler.Logout)

	logger.Info("Routes configured successfully",
		"generation_endpoints", []string{"/api/planet/generate", "/api/galaxy/generate", "/api/system/generate"},
		"discovery_endpoints", []string{"/api/discoveries/save", "/api/discoveries", "/api/discoveries/{id}"},
		"protected_endpoints", []string{"/api/explorers/me"},
		"auth_endpoints", []string{"/auth/github", "/auth/logout"},
		"github_oauth_configured", cfg.GitHubOAuthConfigured(),
	)

	return mux
}

// Handler is the full application handler: routes behind CORS and panic
// recovery.
func (r *Routes) Handler() http.Handler {
	return r.wrap(r.Setup())
}

func (r *Routes) wrap(h http.Handler) http.Handler {
	cors := middleware.NewCORS(r.deps.Config.Frontend)
	return middleware.Recover(cors.Middleware(h))
}
