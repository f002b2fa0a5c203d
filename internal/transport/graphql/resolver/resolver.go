// Package resolver binds the GraphQL root fields to the cellar service. A
// *Resolver is the root value handed to the schema: one method per Query and
// Mutation field.
package resolver

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/cellar-backend/internal/domain"
)

//go:generate moq -out cellar_service_mock_test.go -pkg resolver . cellarService

// cellarService defines what the resolver needs from the cellar service.
type cellarService interface {
	CreateWine(ctx context.Context, w domain.Wine) (*domain.Wine, error)
	ListWines(ctx context.Context, limit *int) ([]*domain.Wine, error)
	UpdateWine(ctx context.Context, id uuid.UUID, w domain.Wine) (*domain.Wine, error)
	DeleteWine(ctx context.Context, id uuid.UUID) error
	CreateSpirit(ctx context.Context, s domain.Spirit) (*domain.Spirit, error)
	ListSpirits(ctx context.Context, limit *int) ([]*domain.Spirit, error)
	UpdateSpirit(ctx context.Context, id uuid.UUID, s domain.Spirit) (*domain.Spirit, error)
	DeleteSpirit(ctx context.Context, id uuid.UUID) error
}

// recordBuilder converts a validated draft into a typed record.
type recordBuilder interface {
	Build(d domain.Draft) (domain.Record, error)
}

// Resolver holds the dependencies of the root field resolvers. Single
// lookups go through the request's dataloaders.
type Resolver struct {
	cellar  cellarService
	builder recordBuilder
	log     *slog.Logger
}

// New creates a resolver.
func New(log *slog.Logger, cellar cellarService, builder recordBuilder) *Resolver {
	return &Resolver{
		cellar:  cellar,
		builder: builder,
		log:     log.With("service", "resolver"),
	}
}
