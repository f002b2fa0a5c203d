package resolver

import (
	"fmt"

	"github.com/heartmarshall/cellar-backend/internal/domain"
	"github.com/heartmarshall/cellar-backend/internal/transport/graphql/model"
)

type idArgs struct {
	ID model.UUID
}

type limitArgs struct {
	Limit *int32
}

// limit widens the optional page size for the service.
func (a limitArgs) limit() *int {
	if a.Limit == nil {
		return nil
	}
	n := int(*a.Limit)
	return &n
}

type wineArgs struct {
	Input model.WineInput
}

type wineUpdateArgs struct {
	ID    model.UUID
	Input model.WineInput
}

type spiritArgs struct {
	Input model.SpiritInput
}

type spiritUpdateArgs struct {
	ID    model.UUID
	Input model.SpiritInput
}

func (r *Resolver) buildWine(in model.WineInput) (domain.Wine, error) {
	rec, err := r.builder.Build(in.Draft())
	if err != nil {
		return domain.Wine{}, err
	}
	w, ok := rec.(*domain.Wine)
	if !ok {
		return domain.Wine{}, fmt.Errorf("built %T, want *domain.Wine", rec)
	}
	return *w, nil
}

func (r *Resolver) buildSpirit(in model.SpiritInput) (domain.Spirit, error) {
	rec, err := r.builder.Build(in.Draft())
	if err != nil {
		return domain.Spirit{}, err
	}
	s, ok := rec.(*domain.Spirit)
	if !ok {
		return domain.Spirit{}, fmt.Errorf("built %T, want *domain.Spirit", rec)
	}
	return *s, nil
}
