package resolver

import (
	"context"

	"github.com/heartmarshall/cellar-backend/internal/transport/graphql/dataloader"
	"github.com/heartmarshall/cellar-backend/internal/transport/graphql/model"
)

func (r *Resolver) ListWines(ctx context.Context, args limitArgs) (*model.Connection[*model.Wine], error) {
	wines, err := r.cellar.ListWines(ctx, args.limit())
	if err != nil {
		return nil, err
	}
	return model.NewConnection(wines, model.NewWine), nil
}

// GetWine resolves to null when the wine does not exist for the caller.
func (r *Resolver) GetWine(ctx context.Context, args idArgs) (*model.Wine, error) {
	w, err := dataloader.FromContext(ctx).WineByID.Load(ctx, args.ID.UUID)()
	if err != nil {
		return nil, err
	}
	return model.NewWine(w), nil
}

func (r *Resolver) CreateWine(ctx context.Context, args wineArgs) (*model.Wine, error) {
	in, err := r.buildWine(args.Input)
	if err != nil {
		return nil, err
	}
	w, err := r.cellar.CreateWine(ctx, in)
	if err != nil {
		return nil, err
	}
	return model.NewWine(w), nil
}

func (r *Resolver) UpdateWine(ctx context.Context, args wineUpdateArgs) (*model.Wine, error) {
	in, err := r.buildWine(args.Input)
	if err != nil {
		return nil, err
	}
	w, err := r.cellar.UpdateWine(ctx, args.ID.UUID, in)
	if err != nil {
		return nil, err
	}
	return model.NewWine(w), nil
}

func (r *Resolver) DeleteWine(ctx context.Context, args idArgs) (model.UUID, error) {
	if err := r.cellar.DeleteWine(ctx, args.ID.UUID); err != nil {
		return model.UUID{}, err
	}
	return args.ID, nil
}
