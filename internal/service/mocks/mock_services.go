package mocks

import (
	"context"
	"io"

	"clubsite/internal/graamys"
	"clubsite/internal/model"
	"clubsite/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockGraamysService struct {
	mock.Mock
}

func (m *MockGraamysService) Submit(ctx context.Context, ballot model.Nomination) (*model.Nomination, error) {
	args := m.Called(ctx, ballot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Nomination), args.Error(1)
}

func (m *MockGraamysService) Results(ctx context.Context, password string) (*graamys.Results, error) {
	args := m.Called(ctx, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*graamys.Results), args.Error(1)
}

func (m *MockGraamysService) Stats(ctx context.Context) (graamys.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(graamys.Stats), args.Error(1)
}

type MockGalleryService struct {
	mock.Mock
}

func (m *MockGalleryService) List(ctx context.Context) ([]model.GalleryItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GalleryItem), args.Error(1)
}

func (m *MockGalleryService) Upload(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64) (*model.GalleryItem, error) {
	args := m.Called(ctx, r, originalFilename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GalleryItem), args.Error(1)
}

func (m *MockGalleryService) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) List(filter string) ([]service.EventView, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.EventView), args.Error(1)
}

func (m *MockEventService) Get(id string) (*service.EventView, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.EventView), args.Error(1)
}

func (m *MockEventService) Next() service.NextEvent {
	args := m.Called()
	return args.Get(0).(service.NextEvent)
}

func (m *MockEventService) ICS(id string) ([]byte, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
