package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"interviewhub/internal/model"
	"interviewhub/internal/realtime"
	"interviewhub/internal/repository"
)

var emptySessionData = json.RawMessage(`{}`)

// UpsertCodingSessionInput is a full write of the editor row. Empty fields
// take their defaults.
type UpsertCodingSessionInput struct {
	Language    string          `json:"language" validate:"max=50"`
	InitialCode string          `json:"initial_code"`
	FinalCode   string          `json:"final_code"`
	SessionData json.RawMessage `json:"session_data" swaggertype:"object"`
}

// CodingSessionService defines the shared editor use cases. Every write is
// an upsert keyed on the interview id.
type CodingSessionService interface {
	// Get returns nil without error when the interview has no session yet.
	Get(ctx context.Context, interviewID string) (*model.CodingSession, error)
	Upsert(ctx context.Context, interviewID string, in UpsertCodingSessionInput) (*model.CodingSession, error)
	// UpdateCode writes only the language and the current code.
	UpdateCode(ctx context.Context, interviewID, code, language string) (*model.CodingSession, error)
	// SaveSessionData writes only the free-form editor state.
	SaveSessionData(ctx context.Context, interviewID string, data json.RawMessage) (*model.CodingSession, error)
	ListForUser(ctx context.Context, userID string, role model.Role) ([]model.CodingSession, error)
	Subscribe(ctx context.Context, interviewID string, h realtime.Handler) (realtime.Subscription, error)
}

type codingSessionService struct {
	base
	repo repository.CodingSessionRepository
}

// NewCodingSessionService constructs a CodingSessionService.
func NewCodingSessionService(repo repository.CodingSessionRepository, broker realtime.Broker, log *zap.Logger) CodingSessionService {
	return &codingSessionService{base: newBase(broker, log), repo: repo}
}

func (s *codingSessionService) Get(ctx context.Context, interviewID string) (*model.CodingSession, error) {
	const op = "coding_sessions.get"
	if interviewID == "" {
		return nil, invalid(op, "interview id is required")
	}
	cs, err := s.repo.FindByInterview(ctx, interviewID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, s.fail(op, "Failed to load coding session", err)
	}
	return cs, nil
}

func (s *codingSessionService) Upsert(ctx context.Context, interviewID string, in UpsertCodingSessionInput) (*model.CodingSession, error) {
	const op = "coding_sessions.upsert"
	if err := s.checkInterview(op, interviewID); err != nil {
		return nil, err
	}
	if err := check(op, in); err != nil {
		return nil, err
	}
	data, err := sessionData(op, in.SessionData)
	if err != nil {
		return nil, err
	}
	lang := languageOrDefault(in.Language)
	return s.write(ctx, op, "Failed to save coding session", interviewID, repository.CodingSessionFields{
		Language:    &lang,
		InitialCode: &in.InitialCode,
		FinalCode:   &in.FinalCode,
		SessionData: data,
	})
}

func (s *codingSessionService) UpdateCode(ctx context.Context, interviewID, code, language string) (*model.CodingSession, error) {
	const op = "coding_sessions.update_code"
	if err := s.checkInterview(op, interviewID); err != nil {
		return nil, err
	}
	lang := languageOrDefault(language)
	return s.write(ctx, op, "Failed to update code", interviewID, repository.CodingSessionFields{
		Language:  &lang,
		FinalCode: &code,
	})
}

func (s *codingSessionService) SaveSessionData(ctx context.Context, interviewID string, data json.RawMessage) (*model.CodingSession, error) {
	const op = "coding_sessions.save_data"
	if err := s.checkInterview(op, interviewID); err != nil {
		return nil, err
	}
	data, err := sessionData(op, data)
	if err != nil {
		return nil, err
	}
	return s.write(ctx, op, "Failed to save session data", interviewID, repository.CodingSessionFields{
		SessionData: data,
	})
}

// write upserts f and publishes the merged row. The store cannot tell an
// insert from a merge, so listeners always receive an UPDATE.
func (s *codingSessionService) write(ctx context.Context, op, fallback, interviewID string, f repository.CodingSessionFields) (*model.CodingSession, error) {
	cs, err := s.repo.Upsert(ctx, interviewID, f, s.now())
	if err != nil {
		return nil, s.fail(op, fallback, err)
	}
	s.publish(ctx, realtime.CodingSessionTopic(interviewID), realtime.TableCodingSessions, realtime.EventUpdate, cs, nil)
	return cs, nil
}

func (s *codingSessionService) ListForUser(ctx context.Context, userID string, role model.Role) ([]model.CodingSession, error) {
	const op = "coding_sessions.list_for_user"
	if userID == "" {
		return nil, invalid(op, "user id is required")
	}
	items, err := s.repo.ListForUser(ctx, repository.ParticipantFor(role), userID)
	if err != nil {
		return nil, s.fail(op, "Failed to load coding sessions", err)
	}
	return items, nil
}

func (s *codingSessionService) Subscribe(ctx context.Context, interviewID string, h realtime.Handler) (realtime.Subscription, error) {
	const op = "coding_sessions.subscribe"
	if err := s.checkInterview(op, interviewID); err != nil {
		return nil, err
	}
	return s.subscribe(ctx, op, realtime.CodingSessionTopic(interviewID), h)
}

func (s *codingSessionService) checkInterview(op, interviewID string) error {
	if interviewID == "" {
		return invalid(op, "interview id is required")
	}
	return nil
}

func languageOrDefault(lang string) string {
	if lang == "" {
		return model.DefaultLanguage
	}
	return lang
}

func sessionData(op string, data json.RawMessage) (json.RawMessage, error) {
	if len(data) == 0 || string(data) == "null" {
		return emptySessionData, nil
	}
	if !json.Valid(data) {
		return nil, invalid(op, "session_data must be valid JSON")
	}
	return data, nil
}
