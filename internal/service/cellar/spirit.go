package cellar

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/cellar-backend/internal/domain"
)

// CreateSpirit validates and stores a new spirit for the current owner.
func (s *Service) CreateSpirit(ctx context.Context, sp domain.Spirit) (*domain.Spirit, error) {
	ownerID, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.checker.CheckRecord(&sp); err != nil {
		return nil, err
	}

	s.stamp(&sp.Meta, ownerID)

	created, err := s.spirits.Create(ctx, &sp)
	if err != nil {
		return nil, fmt.Errorf("create spirit: %w", err)
	}

	s.log.InfoContext(ctx, "spirit created",
		slog.String("owner_id", ownerID.String()),
		slog.String("spirit_id", created.ID.String()),
	)
	return created, nil
}

// ListSpirits returns the owner's spirits in insertion order.
func (s *Service) ListSpirits(ctx context.Context, limit *int) ([]*domain.Spirit, error) {
	ownerID, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	n, err := s.resolveLimit(limit)
	if err != nil {
		return nil, err
	}
	return s.spirits.List(ctx, ownerID, n)
}

// GetSpirit returns one spirit of the owner.
func (s *Service) GetSpirit(ctx context.Context, id uuid.UUID) (*domain.Spirit, error) {
	ownerID, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	return s.spirits.GetByID(ctx, ownerID, id)
}

// GetSpiritsByIDs returns the owner's spirits among ids.
func (s *Service) GetSpiritsByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Spirit, error) {
	ownerID, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*domain.Spirit{}, nil
	}
	return s.spirits.GetByIDs(ctx, ownerID, ids)
}

// UpdateSpirit replaces every field of an existing spirit.
func (s *Service) UpdateSpirit(ctx context.Context, id uuid.UUID, sp domain.Spirit) (*domain.Spirit, error) {
	ownerID, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.checker.CheckRecord(&sp); err != nil {
		return nil, err
	}

	var updated *domain.Spirit
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := s.spirits.GetByID(ctx, ownerID, id)
		if err != nil {
			return err
		}
		sp.Meta = existing.Meta
		sp.UpdatedAt = s.clock.Now().UTC()

		updated, err = s.spirits.Update(ctx, &sp)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update spirit: %w", err)
	}

	s.log.InfoContext(ctx, "spirit updated",
		slog.String("owner_id", ownerID.String()),
		slog.String("spirit_id", id.String()),
	)
	return updated, nil
}

// DeleteSpirit removes one spirit of the owner.
func (s *Service) DeleteSpirit(ctx context.Context, id uuid.UUID) error {
	ownerID, err := owner(ctx)
	if err != nil {
		return err
	}
	if err := s.spirits.Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("delete spirit: %w", err)
	}

	s.log.InfoContext(ctx, "spirit deleted",
		slog.String("owner_id", ownerID.String()),
		slog.String("spirit_id", id.String()),
	)
	return nil
}
