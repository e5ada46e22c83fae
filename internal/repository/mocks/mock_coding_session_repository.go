package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"interviewhub/internal/model"
	"interviewhub/internal/repository"
)

type MockCodingSessionRepository struct {
	mock.Mock
}

func (m *MockCodingSessionRepository) FindByInterview(ctx context.Context, interviewID string) (*model.CodingSession, error) {
	args := m.Called(ctx, interviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CodingSession), args.Error(1)
}

func (m *MockCodingSessionRepository) Upsert(ctx context.Context, interviewID string, f repository.CodingSessionFields, updatedAt time.Time) (*model.CodingSession, error) {
	args := m.Called(ctx, interviewID, f, updatedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CodingSession), args.Error(1)
}

func (m *MockCodingSessionRepository) ListForUser(ctx context.Context, p repository.Participant, userID string) ([]model.CodingSession, error) {
	args := m.Called(ctx, p, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CodingSession), args.Error(1)
}
