// Package spirit implements the spirit repository using PostgreSQL.
package spirit

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/cellar-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cellar-backend/internal/domain"
)

const (
	table  = "spirits"
	entity = "spirit"
)

// columns lists every spirits column in scan order.
var columns = []string{
	"id", "owner_id",
	"name", "producer", "type", "country", "region",
	"abv", "age", "vintage_year", "bottling_year", "quantity",
	"purchase_date", "purchase_price", "estimated_value",
	"storage_location", "tasting_notes", "rating", "limited_edition",
	"created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides spirit persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new spirit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a spirit by primary key.
// Returns domain.ErrNotFound if the spirit does not exist or belongs to another owner.
func (r *Repo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Spirit, error) {
	b := postgres.Builder.Select(columns...).
		From(table).
		Where(sq.Eq{"id": id, "owner_id": ownerID})
	sp, err := scanSpirit(postgres.QueryRow(ctx, r.pool, b))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return sp, nil
}

// GetByIDs returns the owner's spirits among ids, ordered by created_at.
// Unknown ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]*domain.Spirit, error) {
	if len(ids) == 0 {
		return []*domain.Spirit{}, nil
	}

	return r.list(ctx, postgres.Builder.Select(columns...).
		From(table).
		Where(sq.Eq{"owner_id": ownerID, "id": ids}).
		OrderBy("created_at", "id"))
}

// List returns at most limit spirits of the owner in insertion order.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID, limit int) ([]*domain.Spirit, error) {
	return r.list(ctx, postgres.Builder.Select(columns...).
		From(table).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at", "id").
		Limit(uint64(max(limit, 0))))
}

func (r *Repo) list(ctx context.Context, b sq.SelectBuilder) ([]*domain.Spirit, error) {
	rows, err := postgres.Query(ctx, r.pool, b)
	if err != nil {
		return nil, fmt.Errorf("list spirits: %w", err)
	}

	spirits, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Spirit, error) {
		return scanSpirit(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan spirits: %w", err)
	}
	return spirits, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a spirit with its pre-assigned id, owner and timestamps.
func (r *Repo) Create(ctx context.Context, s *domain.Spirit) (*domain.Spirit, error) {
	b := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(values(s)...).
		Suffix(returning)
	created, err := scanSpirit(postgres.QueryRow(ctx, r.pool, b))
	if err != nil {
		return nil, postgres.MapError(err, entity, s.ID)
	}
	return created, nil
}

// Update replaces every mutable column of the spirit identified by s.ID and
// s.OwnerID. Returns domain.ErrNotFound if no such spirit exists.
func (r *Repo) Update(ctx context.Context, s *domain.Spirit) (*domain.Spirit, error) {
	set := make(map[string]any, len(columns))
	vals := values(s)
	for i, col := range columns {
		switch col {
		case "id", "owner_id", "created_at":
			continue
		}
		set[col] = vals[i]
	}

	b := postgres.Builder.Update(table).
		SetMap(set).
		Where(sq.Eq{"id": s.ID, "owner_id": s.OwnerID}).
		Suffix(returning)
	updated, err := scanSpirit(postgres.QueryRow(ctx, r.pool, b))
	if err != nil {
		return nil, postgres.MapError(err, entity, s.ID)
	}
	return updated, nil
}

// Delete removes a spirit of the owner.
// Returns domain.ErrNotFound if the spirit does not exist or belongs to another owner.
func (r *Repo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := postgres.Exec(ctx, r.pool, postgres.Builder.Delete(table).
		Where(sq.Eq{"id": id, "owner_id": ownerID}))
	if err != nil {
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

// values returns the column values of s in columns order.
func values(s *domain.Spirit) []any {
	return []any{
		s.ID, s.OwnerID,
		s.Name, s.Producer, s.Type, s.Country, s.Region,
		s.ABV, s.Age, s.VintageYear, s.BottlingYear, s.Quantity,
		s.PurchaseDate, s.PurchasePrice, s.EstimatedValue,
		s.StorageLocation, s.TastingNotes, s.Rating, s.LimitedEdition,
		s.CreatedAt, s.UpdatedAt,
	}
}

func scanSpirit(row pgx.Row) (*domain.Spirit, error) {
	var s domain.Spirit
	err := row.Scan(
		&s.ID, &s.OwnerID,
		&s.Name, &s.Producer, &s.Type, &s.Country, &s.Region,
		&s.ABV, &s.Age, &s.VintageYear, &s.BottlingYear, &s.Quantity,
		&s.PurchaseDate, &s.PurchasePrice, &s.EstimatedValue,
		&s.StorageLocation, &s.TastingNotes, &s.Rating, &s.LimitedEdition,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.CreatedAt = s.CreatedAt.UTC()
	s.UpdatedAt = s.UpdatedAt.UTC()
	if s.PurchaseDate != nil {
		d := s.PurchaseDate.UTC()
		s.PurchaseDate = &d
	}
	return &s, nil
}
