package form

import (
	"context"
	"sync"

	"github.com/heartmarshall/cellar-backend/internal/domain"
)

var _ recordCreator = &recordCreatorMock{}

type recordCreatorMock struct {
	CreateFunc func(ctx context.Context, rec domain.Record) (domain.Record, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Rec domain.Record
		}
	}
	lockCreate sync.RWMutex
}

func (mock *recordCreatorMock) Create(ctx context.Context, rec domain.Record) (domain.Record, error) {
	if mock.CreateFunc == nil {
		panic("recordCreatorMock.CreateFunc: method is nil but recordCreator.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec domain.Record
	}{Ctx: ctx, Rec: rec}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *recordCreatorMock) CreateCalls() []struct {
	Ctx context.Context
	Rec domain.Record
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
