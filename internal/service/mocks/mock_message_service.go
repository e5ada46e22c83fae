package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"interviewhub/internal/model"
	"interviewhub/internal/realtime"
	"interviewhub/internal/service"
)

type MockMessageService struct {
	mock.Mock
}

var _ service.MessageService = (*MockMessageService)(nil)

func (m *MockMessageService) List(ctx context.Context, interviewID string) ([]model.Message, error) {
	args := m.Called(ctx, interviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Message), args.Error(1)
}

func (m *MockMessageService) Send(ctx context.Context, interviewID, senderID, text string, t model.MessageType) (*model.Message, error) {
	args := m.Called(ctx, interviewID, senderID, text, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Message), args.Error(1)
}

func (m *MockMessageService) SendFile(ctx context.Context, interviewID, senderID string, f service.FileUpload) (*model.Message, error) {
	args := m.Called(ctx, interviewID, senderID, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Message), args.Error(1)
}

func (m *MockMessageService) Update(ctx context.Context, id, text string) (*model.Message, error) {
	args := m.Called(ctx, id, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Message), args.Error(1)
}

func (m *MockMessageService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMessageService) AttachmentURL(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockMessageService) Recent(ctx context.Context, userID string, limit int) ([]model.Message, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Message), args.Error(1)
}

func (m *MockMessageService) Subscribe(ctx context.Context, interviewID string, h realtime.Handler) (realtime.Subscription, error) {
	args := m.Called(ctx, interviewID, h)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(realtime.Subscription), args.Error(1)
}
