package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"interviewhub/internal/model"
	"interviewhub/internal/repository"
)

type MockInterviewRepository struct {
	mock.Mock
}

func (m *MockInterviewRepository) List(ctx context.Context, f repository.InterviewFilter) ([]model.Interview, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Interview), args.Error(1)
}

func (m *MockInterviewRepository) FindByID(ctx context.Context, id string) (*model.Interview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Interview), args.Error(1)
}

func (m *MockInterviewRepository) Create(ctx context.Context, in *model.Interview) (*model.Interview, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Interview), args.Error(1)
}

func (m *MockInterviewRepository) Update(ctx context.Context, id string, p model.InterviewPatch, updatedAt time.Time) (*model.Interview, error) {
	args := m.Called(ctx, id, p, updatedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Interview), args.Error(1)
}

func (m *MockInterviewRepository) Delete(ctx context.Context, id string) (*model.Interview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Interview), args.Error(1)
}

func (m *MockInterviewRepository) Upcoming(ctx context.Context, now time.Time, limit int) ([]model.Interview, error) {
	args := m.Called(ctx, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Interview), args.Error(1)
}

func (m *MockInterviewRepository) CountUpcoming(ctx context.Context, p repository.Participant, userID string, now time.Time) (int, error) {
	args := m.Called(ctx, p, userID, now)
	return args.Int(0), args.Error(1)
}

func (m *MockInterviewRepository) CompletedRatings(ctx context.Context, p repository.Participant, userID string) ([]*int, error) {
	args := m.Called(ctx, p, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*int), args.Error(1)
}

func (m *MockInterviewRepository) CountCreatedSince(ctx context.Context, p repository.Participant, userID string, since time.Time) (int, error) {
	args := m.Called(ctx, p, userID, since)
	return args.Int(0), args.Error(1)
}
