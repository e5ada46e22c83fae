package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"interviewhub/internal/model"
	"interviewhub/internal/realtime"
	"interviewhub/internal/repository"
	repoMocks "interviewhub/internal/repository/mocks"
)

func newCodingSessionFixture(t *testing.T) (*codingSessionService, *repoMocks.MockCodingSessionRepository, *realtime.MemoryBroker) {
	t.Helper()
	repo := new(repoMocks.MockCodingSessionRepository)
	broker := realtime.NewMemoryBroker()
	svc := NewCodingSessionService(repo, broker, nil).(*codingSessionService)
	svc.now = func() time.Time { return fixedNow }
	t.Cleanup(func() {
		_ = broker.Close()
		repo.AssertExpectations(t)
	})
	return svc, repo, broker
}

func TestCodingSessionService_Get(t *testing.T) {
	svc, repo, _ := newCodingSessionFixture(t)
	repo.On("FindByInterview", mock.Anything, "int-1").Return(&model.CodingSession{ID: "cs-1"}, nil)
	repo.On("FindByInterview", mock.Anything, "int-2").Return(nil, sql.ErrNoRows)
	repo.On("FindByInterview", mock.Anything, "int-3").Return(nil, errors.New("boom"))

	cs, err := svc.Get(context.Background(), "int-1")
	require.NoError(t, err)
	assert.Equal(t, "cs-1", cs.ID)

	cs, err = svc.Get(context.Background(), "int-2")
	assert.NoError(t, err)
	assert.Nil(t, cs)

	_, err = svc.Get(context.Background(), "int-3")
	assert.Equal(t, "Failed to load coding session", err.Error())
}

func TestCodingSessionService_Writes(t *testing.T) {
	lang := model.DefaultLanguage
	goLang := "go"
	empty := ""
	code := "package main"

	tests := []struct {
		name string
		call func(s CodingSessionService) (*model.CodingSession, error)
		want repository.CodingSessionFields
	}{
		{
			name: "upsert fills defaults",
			call: func(s CodingSessionService) (*model.CodingSession, error) {
				return s.Upsert(context.Background(), "int-1", UpsertCodingSessionInput{})
			},
			want: repository.CodingSessionFields{
				Language:    &lang,
				InitialCode: &empty,
				FinalCode:   &empty,
				SessionData: json.RawMessage(`{}`),
			},
		},
		{
			name: "update code only touches language and final code",
			call: func(s CodingSessionService) (*model.CodingSession, error) {
				return s.UpdateCode(context.Background(), "int-1", code, "go")
			},
			want: repository.CodingSessionFields{Language: &goLang, FinalCode: &code},
		},
		{
			name: "update code defaults language",
			call: func(s CodingSessionService) (*model.CodingSession, error) {
				return s.UpdateCode(context.Background(), "int-1", code, "")
			},
			want: repository.CodingSessionFields{Language: &lang, FinalCode: &code},
		},
		{
			name: "session data only",
			call: func(s CodingSessionService) (*model.CodingSession, error) {
				return s.SaveSessionData(context.Background(), "int-1", json.RawMessage(`{"cursor":3}`))
			},
			want: repository.CodingSessionFields{SessionData: json.RawMessage(`{"cursor":3}`)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, broker := newCodingSessionFixture(t)
			var events []realtime.Event
			sub, err := broker.Subscribe(context.Background(), realtime.CodingSessionTopic("int-1"), func(ev realtime.Event) {
				events = append(events, ev)
			})
			require.NoError(t, err)
			defer sub.Close()

			repo.On("Upsert", mock.Anything, "int-1", tt.want, fixedNow).
				Return(&model.CodingSession{ID: "cs-1", InterviewID: "int-1"}, nil)

			cs, err := tt.call(svc)

			require.NoError(t, err)
			assert.Equal(t, "int-1", cs.InterviewID)
			require.Len(t, events, 1)
			assert.Equal(t, realtime.TableCodingSessions, events[0].Table)
		})
	}
}

func TestCodingSessionService_NeverWritesWithoutInterview(t *testing.T) {
	svc, _, _ := newCodingSessionFixture(t)

	_, err := svc.Upsert(context.Background(), "", UpsertCodingSessionInput{})
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = svc.UpdateCode(context.Background(), "", "x", "go")
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = svc.SaveSessionData(context.Background(), "", nil)
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestCodingSessionService_SaveSessionData_InvalidJSON(t *testing.T) {
	svc, _, _ := newCodingSessionFixture(t)

	_, err := svc.SaveSessionData(context.Background(), "int-1", json.RawMessage(`{"cursor":`))

	assert.Equal(t, KindValidation, KindOf(err))
	assert.Equal(t, "session_data must be valid JSON", err.Error())
}

func TestCodingSessionService_UpdateCode_Failure(t *testing.T) {
	svc, repo, _ := newCodingSessionFixture(t)
	repo.On("Upsert", mock.Anything, "int-1", mock.Anything, fixedNow).Return(nil, errors.New("boom"))

	cs, err := svc.UpdateCode(context.Background(), "int-1", "x", "go")

	assert.Nil(t, cs)
	assert.Equal(t, "Failed to update code", err.Error())
}

func TestCodingSessionService_ListForUser(t *testing.T) {
	svc, repo, _ := newCodingSessionFixture(t)
	repo.On("ListForUser", mock.Anything, repository.AsInterviewer, "u-1").Return([]model.CodingSession{{ID: "cs-1"}}, nil)

	items, err := svc.ListForUser(context.Background(), "u-1", model.RoleInterviewer)

	require.NoError(t, err)
	assert.Len(t, items, 1)
}
