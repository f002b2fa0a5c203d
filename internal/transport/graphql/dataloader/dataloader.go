// Package dataloader provides per-request DataLoaders that batch record
// lookups by id into single service calls. Owner scoping is applied by the
// service from the request context of the first load in a batch.
package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/cellar-backend/internal/config"
	"github.com/heartmarshall/cellar-backend/internal/domain"
)

// recordService is the subset of the cellar service used for batching.
type recordService interface {
	GetWinesByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Wine, error)
	GetSpiritsByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Spirit, error)
}

// Loaders contains the per-request DataLoaders. A missing id resolves to nil.
type Loaders struct {
	WineByID   *dataloader.Loader[uuid.UUID, *domain.Wine]
	SpiritByID *dataloader.Loader[uuid.UUID, *domain.Spirit]
}

// NewLoaders creates a new set of DataLoaders backed by svc.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(svc recordService, cfg config.GraphQLConfig) *Loaders {
	return &Loaders{
		WineByID:   newLoader(cfg, byID(svc.GetWinesByIDs)),
		SpiritByID: newLoader(cfg, byID(svc.GetSpiritsByIDs)),
	}
}

func newLoader[V any](cfg config.GraphQLConfig, batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](cfg.DataloaderWait),
		dataloader.WithBatchCapacity[uuid.UUID, V](cfg.DataloaderMaxBatch),
	)
}

// byID turns a bulk fetch into a batch function keyed by record id.
func byID[R domain.Record](fetch func(context.Context, []uuid.UUID) ([]R, error)) dataloader.BatchFunc[uuid.UUID, R] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[R] {
		records, err := fetch(ctx, keys)
		if err != nil {
			return errorResults[R](len(keys), err)
		}

		found := make(map[uuid.UUID]R, len(records))
		for _, rec := range records {
			found[rec.RecordID()] = rec
		}

		results := make([]*dataloader.Result[R], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[R]{Data: found[key]}
		}
		return results
	}
}

// errorResults returns n results all carrying err.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}
