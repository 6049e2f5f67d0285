package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"meetapi/internal/model"
	"meetapi/internal/repository"
)

type MockMeetingRepository struct {
	mock.Mock
}

func (m *MockMeetingRepository) List(ctx context.Context, q repository.MeetingQuery) (*repository.PageResult[model.Meeting], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Meeting]), args.Error(1)
}

func (m *MockMeetingRepository) FindByID(ctx context.Context, id int64) (*model.Meeting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Meeting), args.Error(1)
}

func (m *MockMeetingRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockMeetingRepository) Create(ctx context.Context, mt *model.Meeting) (int64, error) {
	args := m.Called(ctx, mt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMeetingRepository) Update(ctx context.Context, mt *model.Meeting) (int64, error) {
	args := m.Called(ctx, mt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMeetingRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
