package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/cellar-backend/internal/config"
	"github.com/heartmarshall/cellar-backend/internal/transport/middleware"
	"github.com/heartmarshall/cellar-backend/internal/transport/rest"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// Routes are the endpoint handlers mounted by NewRouter.
type Routes struct {
	GraphQL http.Handler
	Health  *rest.HealthHandler
	Tokens  tokenValidator
}

// NewRouter mounts the GraphQL endpoint and health probes behind the shared
// middleware chain: recovery, request id, logging, CORS and authentication.
func NewRouter(logger *slog.Logger, cfg config.Config, r Routes) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/query", r.GraphQL)
	mux.HandleFunc("GET /live", r.Health.Live)
	mux.HandleFunc("GET /ready", r.Health.Ready)
	mux.HandleFunc("GET /health", r.Health.Health)

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(logger, r.Tokens),
	)(mux)
}
