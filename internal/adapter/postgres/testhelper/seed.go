package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/cellar-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// NewWine returns an unsaved wine of ownerID with every required field set.
func NewWine(ownerID uuid.UUID) domain.Wine {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return domain.Wine{
		Meta: domain.Meta{
			ID:        uuid.New(),
			OwnerID:   ownerID,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:       "Test Wine " + uniqueSuffix(),
		Producer:   "Test Producer",
		Vintage:    2015,
		Country:    "France",
		Region:     "Bordeaux",
		WineType:   "Red",
		Variety:    "Merlot",
		Quantity:   6,
		BottleSize: 750,
	}
}

// NewSpirit returns an unsaved spirit of ownerID with every required field set.
func NewSpirit(ownerID uuid.UUID) domain.Spirit {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return domain.Spirit{
		Meta: domain.Meta{
			ID:        uuid.New(),
			OwnerID:   ownerID,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:     "Test Spirit " + uniqueSuffix(),
		Producer: "Test Distillery",
		Type:     "Whisky",
		Country:  "Scotland",
		Quantity: 1,
	}
}

// SeedWine inserts a wine with required fields only for ownerID.
func SeedWine(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Wine {
	t.Helper()

	w := NewWine(ownerID)
	_, err := pool.Exec(context.Background(),
		`INSERT INTO wines (id, owner_id, name, producer, vintage, country, region, wine_type, variety, quantity, bottle_size, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		w.ID, w.OwnerID, w.Name, w.Producer, w.Vintage, w.Country, w.Region, w.WineType, w.Variety, w.Quantity, w.BottleSize, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWine: %v", err)
	}
	return w
}

// SeedSpirit inserts a spirit with required fields only for ownerID.
func SeedSpirit(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Spirit {
	t.Helper()

	s := NewSpirit(ownerID)
	_, err := pool.Exec(context.Background(),
		`INSERT INTO spirits (id, owner_id, name, producer, type, country, quantity, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		s.ID, s.OwnerID, s.Name, s.Producer, s.Type, s.Country, s.Quantity, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSpirit: %v", err)
	}
	return s
}
