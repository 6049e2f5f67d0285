package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"meetapi/internal/model"
	"meetapi/internal/response"
)

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) List(ctx context.Context, filter model.NotificationFilter) response.Paged[model.GetNotificationDto] {
	args := m.Called(ctx, filter)
	return args.Get(0).(response.Paged[model.GetNotificationDto])
}

func (m *MockNotificationService) GetByID(ctx context.Context, id int64) response.Response[model.GetNotificationDto] {
	args := m.Called(ctx, id)
	return args.Get(0).(response.Response[model.GetNotificationDto])
}

func (m *MockNotificationService) Create(ctx context.Context, dto model.CreateNotificationDto) response.Response[int64] {
	args := m.Called(ctx, dto)
	return args.Get(0).(response.Response[int64])
}

func (m *MockNotificationService) Delete(ctx context.Context, id int64) response.Response[bool] {
	args := m.Called(ctx, id)
	return args.Get(0).(response.Response[bool])
}
