package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"interviewhub/internal/model"
	"interviewhub/internal/realtime"
	"interviewhub/internal/service"
)

type MockCodingSessionService struct {
	mock.Mock
}

var _ service.CodingSessionService = (*MockCodingSessionService)(nil)

func (m *MockCodingSessionService) session(args mock.Arguments) (*model.CodingSession, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CodingSession), args.Error(1)
}

func (m *MockCodingSessionService) Get(ctx context.Context, interviewID string) (*model.CodingSession, error) {
	return m.session(m.Called(ctx, interviewID))
}

func (m *MockCodingSessionService) Upsert(ctx context.Context, interviewID string, in service.UpsertCodingSessionInput) (*model.CodingSession, error) {
	return m.session(m.Called(ctx, interviewID, in))
}

func (m *MockCodingSessionService) UpdateCode(ctx context.Context, interviewID, code, language string) (*model.CodingSession, error) {
	return m.session(m.Called(ctx, interviewID, code, language))
}

func (m *MockCodingSessionService) SaveSessionData(ctx context.Context, interviewID string, data json.RawMessage) (*model.CodingSession, error) {
	return m.session(m.Called(ctx, interviewID, data))
}

func (m *MockCodingSessionService) ListForUser(ctx context.Context, userID string, role model.Role) ([]model.CodingSession, error) {
	args := m.Called(ctx, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CodingSession), args.Error(1)
}

func (m *MockCodingSessionService) Subscribe(ctx context.Context, interviewID string, h realtime.Handler) (realtime.Subscription, error) {
	args := m.Called(ctx, interviewID, h)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(realtime.Subscription), args.Error(1)
}
