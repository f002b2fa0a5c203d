package cellar

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/cellar-backend/internal/domain"
)

// CreateWine validates and stores a new wine for the current owner.
func (s *Service) CreateWine(ctx context.Context, w domain.Wine) (*domain.Wine, error) {
	ownerID, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.checker.CheckRecord(&w); err != nil {
		return nil, err
	}

	s.stamp(&w.Meta, ownerID)

	created, err := s.wines.Create(ctx, &w)
	if err != nil {
		return nil, fmt.Errorf("create wine: %w", err)
	}

	s.log.InfoContext(ctx, "wine created",
		slog.String("owner_id", ownerID.String()),
		slog.String("wine_id", created.ID.String()),
	)
	return created, nil
}

// ListWines returns the owner's wines in insertion order. A nil limit means
// the configured default.
func (s *Service) ListWines(ctx context.Context, limit *int) ([]*domain.Wine, error) {
	ownerID, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	n, err := s.resolveLimit(limit)
	if err != nil {
		return nil, err
	}
	return s.wines.List(ctx, ownerID, n)
}

// GetWine returns one wine of the owner.
func (s *Service) GetWine(ctx context.Context, id uuid.UUID) (*domain.Wine, error) {
	ownerID, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	return s.wines.GetByID(ctx, ownerID, id)
}

// GetWinesByIDs returns the owner's wines among ids, in no particular order.
// Ids of other owners or unknown ids are skipped.
func (s *Service) GetWinesByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Wine, error) {
	ownerID, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*domain.Wine{}, nil
	}
	return s.wines.GetByIDs(ctx, ownerID, ids)
}

// UpdateWine replaces every field of an existing wine. Identity, owner and
// creation time are kept.
func (s *Service) UpdateWine(ctx context.Context, id uuid.UUID, w domain.Wine) (*domain.Wine, error) {
	ownerID, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.checker.CheckRecord(&w); err != nil {
		return nil, err
	}

	var updated *domain.Wine
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := s.wines.GetByID(ctx, ownerID, id)
		if err != nil {
			return err
		}
		w.Meta = existing.Meta
		w.UpdatedAt = s.clock.Now().UTC()

		updated, err = s.wines.Update(ctx, &w)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update wine: %w", err)
	}

	s.log.InfoContext(ctx, "wine updated",
		slog.String("owner_id", ownerID.String()),
		slog.String("wine_id", id.String()),
	)
	return updated, nil
}

// DeleteWine removes one wine of the owner.
func (s *Service) DeleteWine(ctx context.Context, id uuid.UUID) error {
	ownerID, err := owner(ctx)
	if err != nil {
		return err
	}
	if err := s.wines.Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("delete wine: %w", err)
	}

	s.log.InfoContext(ctx, "wine deleted",
		slog.String("owner_id", ownerID.String()),
		slog.String("wine_id", id.String()),
	)
	return nil
}
