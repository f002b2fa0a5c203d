package resolver

import (
	"context"

	"github.com/heartmarshall/cellar-backend/internal/transport/graphql/dataloader"
	"github.com/heartmarshall/cellar-backend/internal/transport/graphql/model"
)

func (r *Resolver) ListSpirits(ctx context.Context, args limitArgs) (*model.Connection[*model.Spirit], error) {
	spirits, err := r.cellar.ListSpirits(ctx, args.limit())
	if err != nil {
		return nil, err
	}
	return model.NewConnection(spirits, model.NewSpirit), nil
}

// GetSpirit resolves to null when the spirit does not exist for the caller.
func (r *Resolver) GetSpirit(ctx context.Context, args idArgs) (*model.Spirit, error) {
	s, err := dataloader.FromContext(ctx).SpiritByID.Load(ctx, args.ID.UUID)()
	if err != nil {
		return nil, err
	}
	return model.NewSpirit(s), nil
}

func (r *Resolver) CreateSpirit(ctx context.Context, args spiritArgs) (*model.Spirit, error) {
	in, err := r.buildSpirit(args.Input)
	if err != nil {
		return nil, err
	}
	s, err := r.cellar.CreateSpirit(ctx, in)
	if err != nil {
		return nil, err
	}
	return model.NewSpirit(s), nil
}

func (r *Resolver) UpdateSpirit(ctx context.Context, args spiritUpdateArgs) (*model.Spirit, error) {
	in, err := r.buildSpirit(args.Input)
	if err != nil {
		return nil, err
	}
	s, err := r.cellar.UpdateSpirit(ctx, args.ID.UUID, in)
	if err != nil {
		return nil, err
	}
	return model.NewSpirit(s), nil
}

func (r *Resolver) DeleteSpirit(ctx context.Context, args idArgs) (model.UUID, error) {
	if err := r.cellar.DeleteSpirit(ctx, args.ID.UUID); err != nil {
		return model.UUID{}, err
	}
	return args.ID, nil
}
