package cellar

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/cellar-backend/internal/domain"
)

var _ wineRepo = &wineRepoMock{}

type wineRepoMock struct {
	CreateFunc   func(ctx context.Context, w *domain.Wine) (*domain.Wine, error)
	DeleteFunc   func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error
	GetByIDFunc  func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Wine, error)
	GetByIDsFunc func(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]*domain.Wine, error)
	ListFunc     func(ctx context.Context, ownerID uuid.UUID, limit int) ([]*domain.Wine, error)
	UpdateFunc   func(ctx context.Context, w *domain.Wine) (*domain.Wine, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			W   *domain.Wine
		}
		Delete []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Id      uuid.UUID
		}
		GetByID []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Id      uuid.UUID
		}
		GetByIDs []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Ids     []uuid.UUID
		}
		List []struct {
			Ctx     context.Context
			OwnerID uuid.UUID
			Limit   int
		}
		Update []struct {
			Ctx context.Context
			W   *domain.Wine
		}
	}
	lockCreate   sync.RWMutex
	lockDelete   sync.RWMutex
	lockGetByID  sync.RWMutex
	lockGetByIDs sync.RWMutex
	lockList     sync.RWMutex
	lockUpdate   sync.RWMutex
}

func (mock *wineRepoMock) Create(ctx context.Context, w *domain.Wine) (*domain.Wine, error) {
	if mock.CreateFunc == nil {
		panic("wineRepoMock.CreateFunc: method is nil but wineRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   *domain.Wine
	}{
		Ctx: ctx,
		W:   w,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, w)
}

func (mock *wineRepoMock) CreateCalls() []struct {
	Ctx context.Context
	W   *domain.Wine
} {
	var calls []struct {
		Ctx context.Context
		W   *domain.Wine
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *wineRepoMock) Delete(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("wineRepoMock.DeleteFunc: method is nil but wineRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Id      uuid.UUID
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
		Id:      id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, ownerID, id)
}

func (mock *wineRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Id      uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Id      uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *wineRepoMock) GetByID(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Wine, error) {
	if mock.GetByIDFunc == nil {
		panic("wineRepoMock.GetByIDFunc: method is nil but wineRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Id      uuid.UUID
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
		Id:      id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, ownerID, id)
}

func (mock *wineRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Id      uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Id      uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *wineRepoMock) GetByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]*domain.Wine, error) {
	if mock.GetByIDsFunc == nil {
		panic("wineRepoMock.GetByIDsFunc: method is nil but wineRepo.GetByIDs was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Ids     []uuid.UUID
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
		Ids:     ids,
	}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, ownerID, ids)
}

func (mock *wineRepoMock) GetByIDsCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Ids     []uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Ids     []uuid.UUID
	}
	mock.lockGetByIDs.RLock()
	calls = mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}

func (mock *wineRepoMock) List(ctx context.Context, ownerID uuid.UUID, limit int) ([]*domain.Wine, error) {
	if mock.ListFunc == nil {
		panic("wineRepoMock.ListFunc: method is nil but wineRepo.List was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Limit   int
	}{
		Ctx:     ctx,
		OwnerID: ownerID,
		Limit:   limit,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, ownerID, limit)
}

func (mock *wineRepoMock) ListCalls() []struct {
	Ctx     context.Context
	OwnerID uuid.UUID
	Limit   int
} {
	var calls []struct {
		Ctx     context.Context
		OwnerID uuid.UUID
		Limit   int
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *wineRepoMock) Update(ctx context.Context, w *domain.Wine) (*domain.Wine, error) {
	if mock.UpdateFunc == nil {
		panic("wineRepoMock.UpdateFunc: method is nil but wineRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   *domain.Wine
	}{
		Ctx: ctx,
		W:   w,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, w)
}

func (mock *wineRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	W   *domain.Wine
} {
	var calls []struct {
		Ctx context.Context
		W   *domain.Wine
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
