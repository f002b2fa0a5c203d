package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/cellar-backend/internal/auth"
	"github.com/heartmarshall/cellar-backend/internal/config"
	"github.com/heartmarshall/cellar-backend/internal/domain"
	"github.com/heartmarshall/cellar-backend/internal/service/form"
)

var testNow = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

type fakeStore struct {
	records   []domain.Record
	created   []domain.Record
	deleted   []uuid.UUID
	createErr error
}

func (s *fakeStore) List(_ context.Context, _ domain.Kind) ([]domain.Record, error) {
	return s.records, nil
}

func (s *fakeStore) Create(_ context.Context, rec domain.Record) (domain.Record, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	id := uuid.New()
	switch r := rec.(type) {
	case *domain.Wine:
		r.ID = id
	case *domain.Spirit:
		r.ID = id
	}
	s.created = append(s.created, rec)
	return rec, nil
}

func (s *fakeStore) Delete(_ context.Context, _ domain.Kind, id uuid.UUID) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func testDeps(store *fakeStore) deps {
	return deps{
		loadConfig: func() (*config.ClientConfig, error) {
			return &config.ClientConfig{
				Endpoint:   "http://localhost:8080/query",
				Timeout:    time.Second,
				FetchLimit: 1000,
				NoticeTTL:  time.Second,
				Log:        config.LogConfig{Level: "error", Format: "json"},
			}, nil
		},
		openStore: func(*slog.Logger, config.ClientConfig) (recordStore, error) {
			return store, nil
		},
		clock: clockwork.NewFakeClockAt(testNow),
	}
}

func execute(t *testing.T, store *fakeStore, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand(testDeps(store))
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func wines(n int, region string) []domain.Record {
	out := make([]domain.Record, n)
	for i := range out {
		out[i] = &domain.Wine{
			Meta:     domain.Meta{ID: uuid.New()},
			Name:     fmt.Sprintf("Wine %02d", i),
			Producer: "Estate",
			Region:   region,
			Variety:  "Merlot",
			Vintage:  2000 + i,
			Quantity: 1,
		}
	}
	return out
}

func TestList_FiltersAndPaginates(t *testing.T) {
	store := &fakeStore{records: append(wines(30, "Bordeaux"), wines(3, "Rioja")...)}

	out, _, err := execute(t, store, "list", "wines", "--region", "Bordeaux", "--page", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "Page 2 of 2 (30 records)")
	assert.Contains(t, out, "prev: --page 1")
	assert.NotContains(t, out, "next:")
	// Newest first: page 2 holds the five oldest vintages.
	assert.Contains(t, out, "Wine 00")
	assert.NotContains(t, out, "Wine 29")
	assert.NotContains(t, out, "Rioja")
}

func TestList_NoMatches(t *testing.T) {
	store := &fakeStore{records: wines(3, "Bordeaux")}

	out, _, err := execute(t, store, "list", "wines", "--search", "nothing like this")
	require.NoError(t, err)
	assert.Equal(t, "No records match.\n", out)
}

func TestList_Facets(t *testing.T) {
	store := &fakeStore{records: append(wines(2, "Rioja"), wines(1, "Bordeaux")...)}

	out, _, err := execute(t, store, "list", "wines", "--facets")
	require.NoError(t, err)
	assert.Contains(t, out, "Regions:   Bordeaux, Rioja")
	assert.Contains(t, out, "Varieties: Merlot")
}

func TestList_UnknownKind(t *testing.T) {
	_, _, err := execute(t, &fakeStore{}, "list", "beers")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown record kind "beers"`)
}

func TestList_EndpointOverrideIsValidated(t *testing.T) {
	_, _, err := execute(t, &fakeStore{}, "list", "wines", "--endpoint", "ftp://nowhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endpoint")
}

func TestAdd_Success(t *testing.T) {
	store := &fakeStore{}

	out, _, err := execute(t, store, "add", "wine",
		"--set", "name=Chateau Test",
		"--set", "producer=Test Estate",
		"--set", "country=France",
		"--set", "region=Bordeaux",
		"--set", "wineType=Red",
		"--set", "variety=Merlot",
	)
	require.NoError(t, err)

	require.Len(t, store.created, 1)
	w, ok := store.created[0].(*domain.Wine)
	require.True(t, ok)
	assert.Equal(t, "Chateau Test", w.Name)
	assert.Equal(t, 2026, w.Vintage)
	assert.Equal(t, 750, w.BottleSize)
	assert.Equal(t, 1, w.Quantity)
	assert.Contains(t, out, "Wine successfully added to your collection!")
	assert.Contains(t, out, "id: "+w.ID.String())
}

func TestAdd_ValidationBlocksSubmit(t *testing.T) {
	store := &fakeStore{}

	_, errOut, err := execute(t, store, "add", "spirit", "--set", "name=Some Rum", "--set", "abv=140")

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, store.created)
	assert.Contains(t, errOut, form.SummaryMessage)
	assert.Contains(t, errOut, "  producer:")
	assert.Contains(t, errOut, "  abv:")
	assert.Less(t, strings.Index(errOut, "  producer:"), strings.Index(errOut, "  abv:"))
}

func TestAdd_StoreFailure(t *testing.T) {
	store := &fakeStore{createErr: domain.ErrStoreUnavailable}

	_, errOut, err := execute(t, store, "add", "spirit",
		"--set", "name=Some Rum",
		"--set", "producer=Distillery",
		"--set", "type=Rum",
		"--set", "country=Jamaica",
	)
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Contains(t, errOut, "Failed to add spirit. Please try again.")
}

func TestParseAssignments(t *testing.T) {
	got, err := parseAssignments(domain.KindWine, []string{"name=A=B", " region =Rioja", "tastingNotes="})
	require.NoError(t, err)
	assert.Equal(t, []assignment{
		{field: "name", value: "A=B"},
		{field: "region", value: "Rioja"},
		{field: "tastingNotes", value: ""},
	}, got)

	_, err = parseAssignments(domain.KindWine, []string{"abv=40"})
	assert.ErrorContains(t, err, `unknown wine field "abv"`)

	_, err = parseAssignments(domain.KindSpirit, []string{"novalue"})
	assert.ErrorContains(t, err, "want field=value")
}

func TestDelete(t *testing.T) {
	store := &fakeStore{}
	id := uuid.New()

	out, _, err := execute(t, store, "delete", "spirit", id.String())
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{id}, store.deleted)
	assert.Contains(t, out, "Spirit "+id.String()+" deleted.")

	_, _, err = execute(t, store, "delete", "spirit", "not-a-uuid")
	assert.ErrorContains(t, err, "invalid id")
}

func TestFields_ShowsDefaults(t *testing.T) {
	out, _, err := execute(t, &fakeStore{}, "fields", "wine")
	require.NoError(t, err)

	var vintage string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "vintage ") {
			vintage = line
		}
	}
	assert.Equal(t, []string{"vintage", "int", "yes", "2026"}, strings.Fields(vintage))
}

func TestCatalog(t *testing.T) {
	out, _, err := execute(t, &fakeStore{}, "catalog", "regions", "Spain")
	require.NoError(t, err)
	assert.Equal(t, "Rioja\nRibera del Duero\nPriorat\n", out)

	_, _, err = execute(t, &fakeStore{}, "catalog", "regions", "Atlantis")
	assert.ErrorContains(t, err, `unknown country "Atlantis"`)

	out, _, err = execute(t, &fakeStore{}, "catalog", "bottle-sizes")
	require.NoError(t, err)
	assert.Contains(t, out, "750\t750ml (Standard)")
}

func TestDevToken(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "dev-secret")
	t.Setenv("AUTH_JWT_ISSUER", "cellar-dev")
	owner := uuid.New()

	out, _, err := execute(t, &fakeStore{}, "dev-token", "--owner", owner.String(), "--ttl", "5m")
	require.NoError(t, err)

	mgr := auth.NewJWTManager("dev-secret", "cellar-dev", time.Hour, clockwork.NewFakeClockAt(testNow.Add(time.Minute)))
	got, err := mgr.ValidateToken(context.Background(), strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, owner, got)

	expired := auth.NewJWTManager("dev-secret", "cellar-dev", time.Hour, clockwork.NewFakeClockAt(testNow.Add(10*time.Minute)))
	_, err = expired.ValidateToken(context.Background(), strings.TrimSpace(out))
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestDevToken_RequiresSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")

	_, _, err := execute(t, &fakeStore{}, "dev-token")
	assert.ErrorContains(t, err, "AUTH_JWT_SECRET")
}
