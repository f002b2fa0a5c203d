package cellar

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/cellar-backend/internal/domain"
)

var _ spiritRepo = &spiritRepoMock{}

type spiritRepoMock struct {
	CreateFunc   func(ctx context.Context, s *domain.Spirit) (*domain.Spirit, error)
	DeleteFunc   func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error
	GetByIDFunc  func(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Spirit, error)
	GetByIDsFunc func(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]*domain.Spirit, error)
	ListFunc     func(ctx context.Context, ownerID uuid.UUID, limit int) ([]*domain.Spirit, error)
	UpdateFunc   func(ctx context.Context, s *domain.Spirit) (*domain.Spirit, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			S   *domain.Spirit
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
			S   *domain.Spirit
		}
	}
	lockCreate   sync.RWMutex
	lockDelete   sync.RWMutex
	lockGetByID  sync.RWMutex
	lockGetByIDs sync.RWMutex
	lockList     sync.RWMutex
	lockUpdate   sync.RWMutex
}

func (mock *spiritRepoMock) Create(ctx context.Context, s *domain.Spirit) (*domain.Spirit, error) {
	if mock.CreateFunc == nil {
		panic("spiritRepoMock.CreateFunc: method is nil but spiritRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Spirit
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *spiritRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   *domain.Spirit
} {
	var calls []struct {
		Ctx context.Context
		S   *domain.Spirit
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *spiritRepoMock) Delete(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("spiritRepoMock.DeleteFunc: method is nil but spiritRepo.Delete was just called")
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

func (mock *spiritRepoMock) DeleteCalls() []struct {
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

func (mock *spiritRepoMock) GetByID(ctx context.Context, ownerID uuid.UUID, id uuid.UUID) (*domain.Spirit, error) {
	if mock.GetByIDFunc == nil {
		panic("spiritRepoMock.GetByIDFunc: method is nil but spiritRepo.GetByID was just called")
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

func (mock *spiritRepoMock) GetByIDCalls() []struct {
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

func (mock *spiritRepoMock) GetByIDs(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]*domain.Spirit, error) {
	if mock.GetByIDsFunc == nil {
		panic("spiritRepoMock.GetByIDsFunc: method is nil but spiritRepo.GetByIDs was just called")
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

func (mock *spiritRepoMock) GetByIDsCalls() []struct {
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

func (mock *spiritRepoMock) List(ctx context.Context, ownerID uuid.UUID, limit int) ([]*domain.Spirit, error) {
	if mock.ListFunc == nil {
		panic("spiritRepoMock.ListFunc: method is nil but spiritRepo.List was just called")
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

func (mock *spiritRepoMock) ListCalls() []struct {
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

func (mock *spiritRepoMock) Update(ctx context.Context, s *domain.Spirit) (*domain.Spirit, error) {
	if mock.UpdateFunc == nil {
		panic("spiritRepoMock.UpdateFunc: method is nil but spiritRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Spirit
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, s)
}

func (mock *spiritRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	S   *domain.Spirit
} {
	var calls []struct {
		Ctx context.Context
		S   *domain.Spirit
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
