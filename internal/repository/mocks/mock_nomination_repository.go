package mocks

import (
	"context"

	"clubsite/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockNominationRepository struct {
	mock.Mock
}

func (m *MockNominationRepository) Create(ctx context.Context, n *model.Nomination) (*model.Nomination, error) {
	args := m.Called(ctx, n)
	if f, ok := args.Get(0).(func(context.Context, *model.Nomination) *model.Nomination); ok {
		return f(ctx, n), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Nomination), args.Error(1)
}

func (m *MockNominationRepository) List(ctx context.Context) ([]model.Nomination, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Nomination), args.Error(1)
}

func (m *MockNominationRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
