package resolver

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/cellar-backend/internal/domain"
)

var _ cellarService = &cellarServiceMock{}

type cellarServiceMock struct {
	CreateSpiritFunc func(ctx context.Context, s domain.Spirit) (*domain.Spirit, error)
	CreateWineFunc   func(ctx context.Context, w domain.Wine) (*domain.Wine, error)
	DeleteSpiritFunc func(ctx context.Context, id uuid.UUID) error
	DeleteWineFunc   func(ctx context.Context, id uuid.UUID) error
	ListSpiritsFunc  func(ctx context.Context, limit *int) ([]*domain.Spirit, error)
	ListWinesFunc    func(ctx context.Context, limit *int) ([]*domain.Wine, error)
	UpdateSpiritFunc func(ctx context.Context, id uuid.UUID, s domain.Spirit) (*domain.Spirit, error)
	UpdateWineFunc   func(ctx context.Context, id uuid.UUID, w domain.Wine) (*domain.Wine, error)

	calls struct {
		CreateSpirit []struct {
			Ctx context.Context
			S   domain.Spirit
		}
		CreateWine []struct {
			Ctx context.Context
			W   domain.Wine
		}
		DeleteSpirit []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		DeleteWine []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		ListSpirits []struct {
			Ctx   context.Context
			Limit *int
		}
		ListWines []struct {
			Ctx   context.Context
			Limit *int
		}
		UpdateSpirit []struct {
			Ctx context.Context
			Id  uuid.UUID
			S   domain.Spirit
		}
		UpdateWine []struct {
			Ctx context.Context
			Id  uuid.UUID
			W   domain.Wine
		}
	}
	lockCreateSpirit sync.RWMutex
	lockCreateWine   sync.RWMutex
	lockDeleteSpirit sync.RWMutex
	lockDeleteWine   sync.RWMutex
	lockListSpirits  sync.RWMutex
	lockListWines    sync.RWMutex
	lockUpdateSpirit sync.RWMutex
	lockUpdateWine   sync.RWMutex
}

func (mock *cellarServiceMock) CreateSpirit(ctx context.Context, s domain.Spirit) (*domain.Spirit, error) {
	if mock.CreateSpiritFunc == nil {
		panic("cellarServiceMock.CreateSpiritFunc: method is nil but cellarService.CreateSpirit was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.Spirit
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockCreateSpirit.Lock()
	mock.calls.CreateSpirit = append(mock.calls.CreateSpirit, callInfo)
	mock.lockCreateSpirit.Unlock()
	return mock.CreateSpiritFunc(ctx, s)
}

func (mock *cellarServiceMock) CreateSpiritCalls() []struct {
	Ctx context.Context
	S   domain.Spirit
} {
	var calls []struct {
		Ctx context.Context
		S   domain.Spirit
	}
	mock.lockCreateSpirit.RLock()
	calls = mock.calls.CreateSpirit
	mock.lockCreateSpirit.RUnlock()
	return calls
}

func (mock *cellarServiceMock) CreateWine(ctx context.Context, w domain.Wine) (*domain.Wine, error) {
	if mock.CreateWineFunc == nil {
		panic("cellarServiceMock.CreateWineFunc: method is nil but cellarService.CreateWine was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   domain.Wine
	}{
		Ctx: ctx,
		W:   w,
	}
	mock.lockCreateWine.Lock()
	mock.calls.CreateWine = append(mock.calls.CreateWine, callInfo)
	mock.lockCreateWine.Unlock()
	return mock.CreateWineFunc(ctx, w)
}

func (mock *cellarServiceMock) CreateWineCalls() []struct {
	Ctx context.Context
	W   domain.Wine
} {
	var calls []struct {
		Ctx context.Context
		W   domain.Wine
	}
	mock.lockCreateWine.RLock()
	calls = mock.calls.CreateWine
	mock.lockCreateWine.RUnlock()
	return calls
}

func (mock *cellarServiceMock) DeleteSpirit(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteSpiritFunc == nil {
		panic("cellarServiceMock.DeleteSpiritFunc: method is nil but cellarService.DeleteSpirit was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDeleteSpirit.Lock()
	mock.calls.DeleteSpirit = append(mock.calls.DeleteSpirit, callInfo)
	mock.lockDeleteSpirit.Unlock()
	return mock.DeleteSpiritFunc(ctx, id)
}

func (mock *cellarServiceMock) DeleteSpiritCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockDeleteSpirit.RLock()
	calls = mock.calls.DeleteSpirit
	mock.lockDeleteSpirit.RUnlock()
	return calls
}

func (mock *cellarServiceMock) DeleteWine(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteWineFunc == nil {
		panic("cellarServiceMock.DeleteWineFunc: method is nil but cellarService.DeleteWine was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDeleteWine.Lock()
	mock.calls.DeleteWine = append(mock.calls.DeleteWine, callInfo)
	mock.lockDeleteWine.Unlock()
	return mock.DeleteWineFunc(ctx, id)
}

func (mock *cellarServiceMock) DeleteWineCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockDeleteWine.RLock()
	calls = mock.calls.DeleteWine
	mock.lockDeleteWine.RUnlock()
	return calls
}

func (mock *cellarServiceMock) ListSpirits(ctx context.Context, limit *int) ([]*domain.Spirit, error) {
	if mock.ListSpiritsFunc == nil {
		panic("cellarServiceMock.ListSpiritsFunc: method is nil but cellarService.ListSpirits was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit *int
	}{
		Ctx:   ctx,
		Limit: limit,
	}
	mock.lockListSpirits.Lock()
	mock.calls.ListSpirits = append(mock.calls.ListSpirits, callInfo)
	mock.lockListSpirits.Unlock()
	return mock.ListSpiritsFunc(ctx, limit)
}

func (mock *cellarServiceMock) ListSpiritsCalls() []struct {
	Ctx   context.Context
	Limit *int
} {
	var calls []struct {
		Ctx   context.Context
		Limit *int
	}
	mock.lockListSpirits.RLock()
	calls = mock.calls.ListSpirits
	mock.lockListSpirits.RUnlock()
	return calls
}

func (mock *cellarServiceMock) ListWines(ctx context.Context, limit *int) ([]*domain.Wine, error) {
	if mock.ListWinesFunc == nil {
		panic("cellarServiceMock.ListWinesFunc: method is nil but cellarService.ListWines was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit *int
	}{
		Ctx:   ctx,
		Limit: limit,
	}
	mock.lockListWines.Lock()
	mock.calls.ListWines = append(mock.calls.ListWines, callInfo)
	mock.lockListWines.Unlock()
	return mock.ListWinesFunc(ctx, limit)
}

func (mock *cellarServiceMock) ListWinesCalls() []struct {
	Ctx   context.Context
	Limit *int
} {
	var calls []struct {
		Ctx   context.Context
		Limit *int
	}
	mock.lockListWines.RLock()
	calls = mock.calls.ListWines
	mock.lockListWines.RUnlock()
	return calls
}

func (mock *cellarServiceMock) UpdateSpirit(ctx context.Context, id uuid.UUID, s domain.Spirit) (*domain.Spirit, error) {
	if mock.UpdateSpiritFunc == nil {
		panic("cellarServiceMock.UpdateSpiritFunc: method is nil but cellarService.UpdateSpirit was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
		S   domain.Spirit
	}{
		Ctx: ctx,
		Id:  id,
		S:   s,
	}
	mock.lockUpdateSpirit.Lock()
	mock.calls.UpdateSpirit = append(mock.calls.UpdateSpirit, callInfo)
	mock.lockUpdateSpirit.Unlock()
	return mock.UpdateSpiritFunc(ctx, id, s)
}

func (mock *cellarServiceMock) UpdateSpiritCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
	S   domain.Spirit
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
		S   domain.Spirit
	}
	mock.lockUpdateSpirit.RLock()
	calls = mock.calls.UpdateSpirit
	mock.lockUpdateSpirit.RUnlock()
	return calls
}

func (mock *cellarServiceMock) UpdateWine(ctx context.Context, id uuid.UUID, w domain.Wine) (*domain.Wine, error) {
	if mock.UpdateWineFunc == nil {
		panic("cellarServiceMock.UpdateWineFunc: method is nil but cellarService.UpdateWine was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
		W   domain.Wine
	}{
		Ctx: ctx,
		Id:  id,
		W:   w,
	}
	mock.lockUpdateWine.Lock()
	mock.calls.UpdateWine = append(mock.calls.UpdateWine, callInfo)
	mock.lockUpdateWine.Unlock()
	return mock.UpdateWineFunc(ctx, id, w)
}

func (mock *cellarServiceMock) UpdateWineCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
	W   domain.Wine
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
		W   domain.Wine
	}
	mock.lockUpdateWine.RLock()
	calls = mock.calls.UpdateWine
	mock.lockUpdateWine.RUnlock()
	return calls
}
