package service

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"interviewhub/internal/model"
	"interviewhub/internal/realtime"
	"interviewhub/internal/repository"
	"interviewhub/internal/storage"
)

const (
	defaultUpcomingLimit  = 5
	defaultDuration       = 60
	defaultInterviewType  = "technical"
	defaultDifficulty     = "mid"
	recentInterviewWindow = 7 * 24 * time.Hour
)

var tracer = otel.Tracer("interviewhub/internal/service")

// ListInterviewsInput narrows List. Zero values mean "no filter".
type ListInterviewsInput struct {
	Status   model.InterviewStatus `json:"status" validate:"omitempty,oneof=scheduled in_progress completed cancelled"`
	Type     string                `json:"type"`
	DateFrom *time.Time            `json:"date_from"`
	DateTo   *time.Time            `json:"date_to"`
	Limit    int                   `json:"limit" validate:"gte=0,lte=500"`
}

// CreateInterviewInput is the payload of a new interview.
type CreateInterviewInput struct {
	Title           string    `json:"title" validate:"required,max=200"`
	Description     string    `json:"description"`
	InterviewerID   string    `json:"interviewer_id" validate:"required"`
	CandidateID     string    `json:"candidate_id" validate:"required"`
	ScheduledAt     time.Time `json:"scheduled_at" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" validate:"gte=0,lte=1440"`
	InterviewType   string    `json:"interview_type"`
	DifficultyLevel string    `json:"difficulty_level"`
	PositionTitle   string    `json:"position_title"`
	MeetingURL      string    `json:"meeting_url" validate:"omitempty,url"`
}

type interviewPatchRules struct {
	Title           *string                `json:"title" validate:"omitempty,min=1,max=200"`
	DurationMinutes *int                   `json:"duration_minutes" validate:"omitempty,min=1,max=1440"`
	Status          *model.InterviewStatus `json:"status" validate:"omitempty,oneof=scheduled in_progress completed cancelled"`
	Rating          *int                   `json:"rating" validate:"omitempty,min=1,max=5"`
	MeetingURL      *string                `json:"meeting_url" validate:"omitempty,url"`
}

// InterviewService defines the interview use cases.
type InterviewService interface {
	List(ctx context.Context, in ListInterviewsInput) ([]model.Interview, error)
	// Get returns the interview with its coding sessions and messages.
	Get(ctx context.Context, id string) (*model.InterviewDetail, error)
	Create(ctx context.Context, in CreateInterviewInput) (*model.Interview, error)
	// Update applies the non-nil fields of p and always stamps updated_at.
	Update(ctx context.Context, id string, p model.InterviewPatch) (*model.Interview, error)
	Delete(ctx context.Context, id string) error
	Upcoming(ctx context.Context, limit int) ([]model.Interview, error)
	// Metrics summarises the interviews of one participant.
	Metrics(ctx context.Context, userID string, role model.Role) (*model.InterviewMetrics, error)
	// Subscribe delivers every interview change until the subscription is closed.
	Subscribe(ctx context.Context, h realtime.Handler) (realtime.Subscription, error)
}

type interviewService struct {
	base
	repo     repository.InterviewRepository
	messages repository.MessageRepository
	sessions repository.CodingSessionRepository
	store    storage.Storage
}

// NewInterviewService constructs an InterviewService. store may be nil, in
// which case attachments of deleted interviews are left in place.
func NewInterviewService(
	repo repository.InterviewRepository,
	messages repository.MessageRepository,
	sessions repository.CodingSessionRepository,
	store storage.Storage,
	broker realtime.Broker,
	log *zap.Logger,
) InterviewService {
	return &interviewService{
		base:     newBase(broker, log),
		repo:     repo,
		messages: messages,
		sessions: sessions,
		store:    store,
	}
}

func (s *interviewService) List(ctx context.Context, in ListInterviewsInput) ([]model.Interview, error) {
	const op = "interviews.list"
	if err := check(op, in); err != nil {
		return nil, err
	}
	items, err := s.repo.List(ctx, repository.InterviewFilter{
		Status:   in.Status,
		Type:     in.Type,
		DateFrom: in.DateFrom,
		DateTo:   in.DateTo,
		Limit:    in.Limit,
	})
	if err != nil {
		return nil, s.fail(op, "Failed to load interviews", err)
	}
	return items, nil
}

func (s *interviewService) Get(ctx context.Context, id string) (*model.InterviewDetail, error) {
	const op = "interviews.get"
	if id == "" {
		return nil, invalid(op, "id is required")
	}

	iv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(op, "Interview not found")
		}
		return nil, s.fail(op, "Failed to load interview details", err)
	}

	detail := &model.InterviewDetail{
		Interview:      *iv,
		CodingSessions: []model.CodingSession{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cs, err := s.sessions.FindByInterview(gctx, id)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		detail.CodingSessions = append(detail.CodingSessions, *cs)
		return nil
	})
	g.Go(func() error {
		msgs, err := s.messages.ListByInterview(gctx, id)
		if err != nil {
			return err
		}
		detail.Messages = msgs
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, s.fail(op, "Failed to load interview details", err)
	}
	if detail.Messages == nil {
		detail.Messages = []model.Message{}
	}
	return detail, nil
}

func (s *interviewService) Create(ctx context.Context, in CreateInterviewInput) (*model.Interview, error) {
	const op = "interviews.create"
	if err := check(op, in); err != nil {
		return nil, err
	}

	now := s.now()
	iv := &model.Interview{
		ID:              uuid.New().String(),
		Title:           in.Title,
		Description:     in.Description,
		InterviewerID:   in.InterviewerID,
		CandidateID:     in.CandidateID,
		ScheduledAt:     in.ScheduledAt.UTC(),
		DurationMinutes: in.DurationMinutes,
		InterviewType:   in.InterviewType,
		DifficultyLevel: in.DifficultyLevel,
		Status:          model.StatusScheduled,
		PositionTitle:   in.PositionTitle,
		MeetingURL:      in.MeetingURL,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if iv.DurationMinutes == 0 {
		iv.DurationMinutes = defaultDuration
	}
	if iv.InterviewType == "" {
		iv.InterviewType = defaultInterviewType
	}
	if iv.DifficultyLevel == "" {
		iv.DifficultyLevel = defaultDifficulty
	}

	stored, err := s.repo.Create(ctx, iv)
	if err != nil {
		return nil, s.fail(op, "Failed to create interview", err)
	}
	s.publish(ctx, realtime.InterviewsTopic, realtime.TableInterviews, realtime.EventInsert, stored, nil)
	return stored, nil
}

func (s *interviewService) Update(ctx context.Context, id string, p model.InterviewPatch) (*model.Interview, error) {
	const op = "interviews.update"
	if id == "" {
		return nil, invalid(op, "id is required")
	}
	rules := interviewPatchRules{
		Title:           p.Title,
		DurationMinutes: p.DurationMinutes,
		Status:          p.Status,
		Rating:          p.Rating,
		MeetingURL:      p.MeetingURL,
	}
	if err := check(op, rules); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, p, s.now())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(op, "Interview not found")
		}
		return nil, s.fail(op, "Failed to update interview", err)
	}
	s.publish(ctx, realtime.InterviewsTopic, realtime.TableInterviews, realtime.EventUpdate, updated, nil)
	return updated, nil
}

func (s *interviewService) Delete(ctx context.Context, id string) error {
	const op = "interviews.delete"
	if id == "" {
		return invalid(op, "id is required")
	}
	keys := s.attachmentKeys(ctx, id)
	old, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return notFound(op, "Interview not found")
		}
		return s.fail(op, "Failed to delete interview", err)
	}
	s.removeAttachments(ctx, id, keys)
	s.publish(ctx, realtime.InterviewsTopic, realtime.TableInterviews, realtime.EventDelete, nil, old)
	return nil
}

// attachmentKeys lists the stored objects of an interview's file messages.
// The rows are gone once the cascade runs, so this must happen first.
func (s *interviewService) attachmentKeys(ctx context.Context, id string) []string {
	if s.store == nil {
		return nil
	}
	msgs, err := s.messages.ListByInterview(ctx, id)
	if err != nil {
		s.log.Warn("list attachments of deleted interview", zap.String("interview_id", id), zap.Error(err))
		return nil
	}
	var keys []string
	for _, m := range msgs {
		if m.FilePath != "" {
			keys = append(keys, m.FilePath)
		}
	}
	return keys
}

func (s *interviewService) removeAttachments(ctx context.Context, id string, keys []string) {
	ctx = context.WithoutCancel(ctx)
	for _, key := range keys {
		if err := s.store.Delete(ctx, key); err != nil {
			s.log.Warn("delete attachment of deleted interview",
				zap.String("interview_id", id), zap.String("key", key), zap.Error(err))
		}
	}
}

func (s *interviewService) Upcoming(ctx context.Context, limit int) ([]model.Interview, error) {
	const op = "interviews.upcoming"
	if limit <= 0 {
		limit = defaultUpcomingLimit
	}
	items, err := s.repo.Upcoming(ctx, s.now(), limit)
	if err != nil {
		return nil, s.fail(op, "Failed to load upcoming interviews", err)
	}
	return items, nil
}

func (s *interviewService) Metrics(ctx context.Context, userID string, role model.Role) (*model.InterviewMetrics, error) {
	const op = "interviews.metrics"
	if userID == "" {
		return nil, invalid(op, "user id is required")
	}

	ctx, span := tracer.Start(ctx, "InterviewService.Metrics", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	p := repository.ParticipantFor(role)
	span.SetAttributes(attribute.String("participant", p.Column()))
	now := s.now()

	var (
		upcoming, recent int
		ratings          []*int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		upcoming, err = s.repo.CountUpcoming(gctx, p, userID, now)
		return err
	})
	g.Go(func() (err error) {
		ratings, err = s.repo.CompletedRatings(gctx, p, userID)
		return err
	})
	g.Go(func() (err error) {
		recent, err = s.repo.CountCreatedSince(gctx, p, userID, now.Add(-recentInterviewWindow))
		return err
	})
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "metrics lookup failed")
		return nil, s.fail(op, "Failed to load interview metrics", err)
	}

	m := reduceMetrics(upcoming, ratings, recent)
	return &m, nil
}

// reduceMetrics folds the three lookups into the dashboard numbers. A rating
// is present when it is set and non-zero.
func reduceMetrics(upcoming int, ratings []*int, recent int) model.InterviewMetrics {
	m := model.InterviewMetrics{
		UpcomingCount:  upcoming,
		CompletedCount: len(ratings),
		RecentCount:    recent,
	}

	var sum, present, passed int
	for _, r := range ratings {
		if r == nil || *r == 0 {
			continue
		}
		sum += *r
		present++
		if *r >= 4 {
			passed++
		}
	}
	if present > 0 {
		avg := float64(sum) / float64(present)
		m.AverageRating, _ = strconv.ParseFloat(strconv.FormatFloat(avg, 'f', 1, 64), 64)
	}
	if len(ratings) > 0 {
		m.SuccessRate = int(math.Round(float64(passed) * 100 / float64(len(ratings))))
	}
	return m
}

func (s *interviewService) Subscribe(ctx context.Context, h realtime.Handler) (realtime.Subscription, error) {
	return s.subscribe(ctx, "interviews.subscribe", realtime.InterviewsTopic, h)
}
