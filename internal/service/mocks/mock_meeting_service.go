package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"meetapi/internal/model"
	"meetapi/internal/response"
)

type MockMeetingService struct {
	mock.Mock
}

func (m *MockMeetingService) List(ctx context.Context, filter model.MeetingFilter) response.Paged[model.GetMeetingDto] {
	args := m.Called(ctx, filter)
	return args.Get(0).(response.Paged[model.GetMeetingDto])
}

func (m *MockMeetingService) ListUpcoming(ctx context.Context, filter model.PaginationFilter, userID int64) response.Paged[model.GetMeetingDto] {
	args := m.Called(ctx, filter, userID)
	return args.Get(0).(response.Paged[model.GetMeetingDto])
}

func (m *MockMeetingService) GetByID(ctx context.Context, id int64) response.Response[model.GetMeetingDto] {
	args := m.Called(ctx, id)
	return args.Get(0).(response.Response[model.GetMeetingDto])
}

func (m *MockMeetingService) Create(ctx context.Context, dto model.CreateMeetingDto) response.Response[int64] {
	args := m.Called(ctx, dto)
	return args.Get(0).(response.Response[int64])
}

func (m *MockMeetingService) Update(ctx context.Context, dto model.UpdateMeetingDto) response.Response[string] {
	args := m.Called(ctx, dto)
	return args.Get(0).(response.Response[string])
}

func (m *MockMeetingService) Delete(ctx context.Context, id int64) response.Response[bool] {
	args := m.Called(ctx, id)
	return args.Get(0).(response.Response[bool])
}
