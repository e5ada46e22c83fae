package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"interviewhub/internal/model"
	"interviewhub/internal/realtime"
	"interviewhub/internal/service"
)

type MockInterviewService struct {
	mock.Mock
}

var _ service.InterviewService = (*MockInterviewService)(nil)

func (m *MockInterviewService) List(ctx context.Context, in service.ListInterviewsInput) ([]model.Interview, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Interview), args.Error(1)
}

func (m *MockInterviewService) Get(ctx context.Context, id string) (*model.InterviewDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InterviewDetail), args.Error(1)
}

func (m *MockInterviewService) Create(ctx context.Context, in service.CreateInterviewInput) (*model.Interview, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Interview), args.Error(1)
}

func (m *MockInterviewService) Update(ctx context.Context, id string, p model.InterviewPatch) (*model.Interview, error) {
	args := m.Called(ctx, id, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Interview), args.Error(1)
}

func (m *MockInterviewService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockInterviewService) Upcoming(ctx context.Context, limit int) ([]model.Interview, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Interview), args.Error(1)
}

func (m *MockInterviewService) Metrics(ctx context.Context, userID string, role model.Role) (*model.InterviewMetrics, error) {
	args := m.Called(ctx, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InterviewMetrics), args.Error(1)
}

func (m *MockInterviewService) Subscribe(ctx context.Context, h realtime.Handler) (realtime.Subscription, error) {
	args := m.Called(ctx, h)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(realtime.Subscription), args.Error(1)
}
