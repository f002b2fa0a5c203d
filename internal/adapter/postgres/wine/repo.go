// Package wine implements the wine repository using PostgreSQL.
package wine

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
	table  = "wines"
	entity = "wine"
)

// columns lists every wines column in scan order.
var columns = []string{
	"id", "owner_id",
	"name", "producer", "vintage", "country", "region", "sub_region",
	"wine_type", "variety", "blend_composition", "quantity", "bottle_size",
	"purchase_date", "purchase_price", "estimated_value",
	"storage_location", "tasting_notes", "critics_scores",
	"created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides wine persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new wine repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a wine by primary key.
// Returns domain.ErrNotFound if the wine does not exist or belongs to another owner.
func (r *Repo) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Wine, error) {
	b := postgres.Builder.Select(columns...).
		From(table).
		Where(sq.Eq{"id": id, "owner_id": ownerID})
	w, err := scanWine(postgres.QueryRow(ctx, r.pool, b))
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return w, nil
}

// GetByIDs returns the owner's wines among ids, ordered by created_at.
// Unknown ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]*domain.Wine, error) {
	if len(ids) == 0 {
		return []*domain.Wine{}, nil
	}

	return r.list(ctx, postgres.Builder.Select(columns...).
		From(table).
		Where(sq.Eq{"owner_id": ownerID, "id": ids}).
		OrderBy("created_at", "id"))
}

// List returns at most limit wines of the owner in insertion order.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID, limit int) ([]*domain.Wine, error) {
	return r.list(ctx, postgres.Builder.Select(columns...).
		From(table).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at", "id").
		Limit(uint64(max(limit, 0))))
}

func (r *Repo) list(ctx context.Context, b sq.SelectBuilder) ([]*domain.Wine, error) {
	rows, err := postgres.Query(ctx, r.pool, b)
	if err != nil {
		return nil, fmt.Errorf("list wines: %w", err)
	}

	wines, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Wine, error) {
		return scanWine(row)
	})
	if err != nil {
		return nil, fmt.Errorf("scan wines: %w", err)
	}
	return wines, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a wine with its pre-assigned id, owner and timestamps.
func (r *Repo) Create(ctx context.Context, w *domain.Wine) (*domain.Wine, error) {
	b := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(values(w)...).
		Suffix(returning)
	created, err := scanWine(postgres.QueryRow(ctx, r.pool, b))
	if err != nil {
		return nil, postgres.MapError(err, entity, w.ID)
	}
	return created, nil
}

// Update replaces every mutable column of the wine identified by w.ID and
// w.OwnerID. Returns domain.ErrNotFound if no such wine exists.
func (r *Repo) Update(ctx context.Context, w *domain.Wine) (*domain.Wine, error) {
	set := make(map[string]any, len(columns))
	vals := values(w)
	for i, col := range columns {
		switch col {
		case "id", "owner_id", "created_at":
			continue
		}
		set[col] = vals[i]
	}

	b := postgres.Builder.Update(table).
		SetMap(set).
		Where(sq.Eq{"id": w.ID, "owner_id": w.OwnerID}).
		Suffix(returning)
	updated, err := scanWine(postgres.QueryRow(ctx, r.pool, b))
	if err != nil {
		return nil, postgres.MapError(err, entity, w.ID)
	}
	return updated, nil
}

// Delete removes a wine of the owner.
// Returns domain.ErrNotFound if the wine does not exist or belongs to another owner.
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

// values returns the column values of w in columns order.
func values(w *domain.Wine) []any {
	return []any{
		w.ID, w.OwnerID,
		w.Name, w.Producer, w.Vintage, w.Country, w.Region, w.SubRegion,
		w.WineType, w.Variety, w.BlendComposition, w.Quantity, w.BottleSize,
		w.PurchaseDate, w.PurchasePrice, w.EstimatedValue,
		w.StorageLocation, w.TastingNotes, w.CriticsScores,
		w.CreatedAt, w.UpdatedAt,
	}
}

func scanWine(row pgx.Row) (*domain.Wine, error) {
	var w domain.Wine
	err := row.Scan(
		&w.ID, &w.OwnerID,
		&w.Name, &w.Producer, &w.Vintage, &w.Country, &w.Region, &w.SubRegion,
		&w.WineType, &w.Variety, &w.BlendComposition, &w.Quantity, &w.BottleSize,
		&w.PurchaseDate, &w.PurchasePrice, &w.EstimatedValue,
		&w.StorageLocation, &w.TastingNotes, &w.CriticsScores,
		&w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	w.CreatedAt = w.CreatedAt.UTC()
	w.UpdatedAt = w.UpdatedAt.UTC()
	if w.PurchaseDate != nil {
		d := w.PurchaseDate.UTC()
		w.PurchaseDate = &d
	}
	return &w, nil
}
