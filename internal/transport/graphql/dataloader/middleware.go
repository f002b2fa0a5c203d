package dataloader

import (
	"net/http"

	"github.com/heartmarshall/cellar-backend/internal/config"
)

// Middleware creates an HTTP middleware that instantiates per-request
// DataLoaders and stores them in the request context.
func Middleware(svc recordService, cfg config.GraphQLConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			loaders := NewLoaders(svc, cfg)
			ctx := WithLoaders(r.Context(), loaders)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
