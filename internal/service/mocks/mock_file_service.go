package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"meetapi/internal/response"
	"meetapi/internal/storage"
)

type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) Store(ctx context.Context, r io.Reader, originalName, contentType string, size int64) response.Response[string] {
	args := m.Called(ctx, r, originalName, contentType, size)
	return args.Get(0).(response.Response[string])
}

func (m *MockFileService) Open(ctx context.Context, name string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, storage.ObjectInfo{}, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.ObjectInfo), args.Error(2)
}

func (m *MockFileService) Delete(ctx context.Context, name string) bool {
	args := m.Called(ctx, name)
	return args.Bool(0)
}
