package spirit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/cellar-backend/internal/adapter/postgres/spirit"
	"github.com/heartmarshall/cellar-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/cellar-backend/internal/domain"
)

func newRepo(t *testing.T) (*spirit.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return spirit.New(pool), pool
}

func ptr[T any](v T) *T { return &v }

func TestRepo_Create_AllFields(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	input := testhelper.NewSpirit(uuid.New())
	input.Region = ptr("Islay")
	input.ABV = ptr(46.0)
	input.Age = ptr(16)
	input.VintageYear = ptr(2004)
	input.BottlingYear = ptr(2020)
	input.PurchaseDate = ptr(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	input.Rating = ptr(92.5)
	input.LimitedEdition = ptr(false)

	got, err := repo.Create(context.Background(), &input)
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	if got.ID != input.ID || got.Type != "Whisky" {
		t.Errorf("required fields mismatch: %+v", got)
	}
	if got.Age == nil || *got.Age != 16 {
		t.Errorf("Age mismatch: got %v", got.Age)
	}
	if got.ABV == nil || *got.ABV != 46.0 {
		t.Errorf("ABV mismatch: got %v", got.ABV)
	}
	if got.LimitedEdition == nil || *got.LimitedEdition {
		t.Errorf("LimitedEdition mismatch: got %v, want false", got.LimitedEdition)
	}
	if got.PurchaseDate == nil || got.PurchaseDate.Format(domain.DateLayout) != "2024-01-02" {
		t.Errorf("PurchaseDate mismatch: got %v", got.PurchaseDate)
	}
	if got.EstimatedValue != nil || got.TastingNotes != nil {
		t.Errorf("expected nil unset optionals, got %+v", got)
	}
}

func TestRepo_Create_CheckViolation(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	input := testhelper.NewSpirit(uuid.New())
	input.ABV = ptr(140.0)

	_, err := repo.Create(context.Background(), &input)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got: %v", err)
	}
}

func TestRepo_GetByID_OwnerScoped(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	seeded := testhelper.SeedSpirit(t, pool, uuid.New())

	got, err := repo.GetByID(ctx, seeded.OwnerID, seeded.ID)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}
	if got.Name != seeded.Name {
		t.Errorf("Name mismatch: got %q, want %q", got.Name, seeded.Name)
	}

	if _, err := repo.GetByID(ctx, uuid.New(), seeded.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for other owner, got: %v", err)
	}
}

func TestRepo_ListAndGetByIDs(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	ownerID := uuid.New()

	a := testhelper.SeedSpirit(t, pool, ownerID)
	b := testhelper.SeedSpirit(t, pool, ownerID)
	testhelper.SeedSpirit(t, pool, uuid.New())

	list, err := repo.List(ctx, ownerID, 100)
	if err != nil {
		t.Fatalf("List: unexpected error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 spirits, got %d", len(list))
	}

	batch, err := repo.GetByIDs(ctx, ownerID, []uuid.UUID{b.ID, a.ID})
	if err != nil {
		t.Fatalf("GetByIDs: unexpected error: %v", err)
	}
	if len(batch) != 2 {
		t.Fatalf("expected 2 spirits, got %d", len(batch))
	}
}

func TestRepo_UpdateAndDelete(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	seeded := testhelper.SeedSpirit(t, pool, uuid.New())

	changed := seeded
	changed.Quantity = 3
	changed.Region = ptr("Speyside")

	got, err := repo.Update(ctx, &changed)
	if err != nil {
		t.Fatalf("Update: unexpected error: %v", err)
	}
	if got.Quantity != 3 || got.Region == nil || *got.Region != "Speyside" {
		t.Errorf("fields not updated: %+v", got)
	}

	if err := repo.Delete(ctx, seeded.OwnerID, seeded.ID); err != nil {
		t.Fatalf("Delete: unexpected error: %v", err)
	}
	if _, err := repo.Update(ctx, &changed); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Update after delete: expected ErrNotFound, got: %v", err)
	}
}
