// Package cellar implements the owner-scoped record operations behind the
// GraphQL API. Every operation reads the owner from the request context.
package cellar

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/cellar-backend/internal/config"
	"github.com/heartmarshall/cellar-backend/internal/domain"
	"github.com/heartmarshall/cellar-backend/pkg/ctxutil"
)

//go:generate moq -out wine_repo_mock_test.go -pkg cellar . wineRepo
//go:generate moq -out spirit_repo_mock_test.go -pkg cellar . spiritRepo
//go:generate moq -out tx_manager_mock_test.go -pkg cellar . txManager

type wineRepo interface {
	Create(ctx context.Context, w *domain.Wine) (*domain.Wine, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Wine, error)
	GetByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]*domain.Wine, error)
	List(ctx context.Context, ownerID uuid.UUID, limit int) ([]*domain.Wine, error)
	Update(ctx context.Context, w *domain.Wine) (*domain.Wine, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type spiritRepo interface {
	Create(ctx context.Context, s *domain.Spirit) (*domain.Spirit, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Spirit, error)
	GetByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]*domain.Spirit, error)
	List(ctx context.Context, ownerID uuid.UUID, limit int) ([]*domain.Spirit, error)
	Update(ctx context.Context, s *domain.Spirit) (*domain.Spirit, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// recordChecker validates a typed record before it is persisted.
type recordChecker interface {
	CheckRecord(rec domain.Record) error
}

// Service provides wine and spirit operations for the authenticated owner.
type Service struct {
	wines        wineRepo
	spirits      spiritRepo
	tx           txManager
	checker      recordChecker
	clock        clockwork.Clock
	defaultLimit int
	maxLimit     int
	log          *slog.Logger
}

// NewService creates a new cellar service.
func NewService(
	log *slog.Logger,
	wines wineRepo,
	spirits spiritRepo,
	tx txManager,
	checker recordChecker,
	clock clockwork.Clock,
	cfg config.CellarConfig,
) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Service{
		wines:        wines,
		spirits:      spirits,
		tx:           tx,
		checker:      checker,
		clock:        clock,
		defaultLimit: cfg.DefaultListLimit,
		maxLimit:     cfg.MaxListLimit,
		log:          log.With("service", "cellar"),
	}
}

// owner returns the authenticated user or domain.ErrUnauthorized.
func owner(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id, nil
}

// resolveLimit applies the default for nil and caps at the maximum.
func (s *Service) resolveLimit(limit *int) (int, error) {
	if limit == nil {
		return s.defaultLimit, nil
	}
	if *limit < 1 {
		return 0, domain.NewValidationError("limit", fmt.Sprintf("Limit must be between 1 and %d", s.maxLimit))
	}
	return min(*limit, s.maxLimit), nil
}

// stamp assigns identity and timestamps for a new record.
func (s *Service) stamp(m *domain.Meta, ownerID uuid.UUID) {
	now := s.clock.Now().UTC()
	m.ID = uuid.New()
	m.OwnerID = ownerID
	m.CreatedAt = now
	m.UpdatedAt = now
}
