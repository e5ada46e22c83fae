package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"interviewhub/internal/model"
	"interviewhub/internal/realtime"
	"interviewhub/internal/repository"
	"interviewhub/internal/storage"
)

const (
	defaultRecentLimit = 10
	// MaxAttachmentSize caps a single chat upload.
	MaxAttachmentSize = 10 << 20
)

// FileUpload is an attachment posted into a chat.
type FileUpload struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

type sendMessageRules struct {
	InterviewID string            `json:"interview_id" validate:"required"`
	SenderID    string            `json:"sender_id" validate:"required"`
	Message     string            `json:"message" validate:"required,max=10000"`
	MessageType model.MessageType `json:"message_type" validate:"oneof=text file code system"`
}

// MessageService defines the interview chat use cases.
type MessageService interface {
	List(ctx context.Context, interviewID string) ([]model.Message, error)
	// Send posts a chat line; an empty type means text.
	Send(ctx context.Context, interviewID, senderID, text string, t model.MessageType) (*model.Message, error)
	// SendFile stores the attachment and posts a file message pointing at it.
	SendFile(ctx context.Context, interviewID, senderID string, f FileUpload) (*model.Message, error)
	Update(ctx context.Context, id, text string) (*model.Message, error)
	Delete(ctx context.Context, id string) error
	// AttachmentURL returns a short-lived download link for a file message.
	AttachmentURL(ctx context.Context, id string) (string, error)
	Recent(ctx context.Context, userID string, limit int) ([]model.Message, error)
	// Subscribe delivers chat changes of one interview. Inserted rows are
	// re-read so the handler sees the sender profile.
	Subscribe(ctx context.Context, interviewID string, h realtime.Handler) (realtime.Subscription, error)
}

type messageService struct {
	base
	repo          repository.MessageRepository
	store         storage.Storage
	presignExpiry time.Duration
}

// NewMessageService constructs a MessageService. store may be nil, in which
// case attachments are rejected.
func NewMessageService(
	repo repository.MessageRepository,
	store storage.Storage,
	presignExpiry time.Duration,
	broker realtime.Broker,
	log *zap.Logger,
) MessageService {
	if presignExpiry <= 0 {
		presignExpiry = 15 * time.Minute
	}
	return &messageService{
		base:          newBase(broker, log),
		repo:          repo,
		store:         store,
		presignExpiry: presignExpiry,
	}
}

func (s *messageService) List(ctx context.Context, interviewID string) ([]model.Message, error) {
	const op = "messages.list"
	if interviewID == "" {
		return nil, invalid(op, "interview id is required")
	}
	items, err := s.repo.ListByInterview(ctx, interviewID)
	if err != nil {
		return nil, s.fail(op, "Failed to load messages", err)
	}
	return items, nil
}

func (s *messageService) Send(ctx context.Context, interviewID, senderID, text string, t model.MessageType) (*model.Message, error) {
	const op = "messages.send"
	if t == "" {
		t = model.MessageText
	}
	if err := check(op, sendMessageRules{InterviewID: interviewID, SenderID: senderID, Message: text, MessageType: t}); err != nil {
		return nil, err
	}
	return s.create(ctx, op, &model.Message{
		ID:          uuid.New().String(),
		InterviewID: interviewID,
		SenderID:    senderID,
		Message:     text,
		MessageType: t,
		Timestamp:   s.now(),
	})
}

func (s *messageService) SendFile(ctx context.Context, interviewID, senderID string, f FileUpload) (*model.Message, error) {
	const op = "messages.send_file"
	switch {
	case s.store == nil:
		return nil, &Error{Kind: KindInternal, Op: op, Message: "File attachments are not available"}
	case interviewID == "":
		return nil, invalid(op, "interview id is required")
	case senderID == "":
		return nil, invalid(op, "sender_id is required")
	case f.Body == nil || f.Name == "":
		return nil, invalid(op, "file is required")
	case f.Size > MaxAttachmentSize:
		return nil, invalid(op, fmt.Sprintf("file must be at most %d bytes", MaxAttachmentSize))
	}

	key := storage.AttachmentKey(interviewID, uuid.New().String(), f.Name)
	obj, err := s.store.Put(ctx, key, f.Body, storage.PutObjectOptions{
		Size:        f.Size,
		ContentType: f.ContentType,
		Metadata:    map[string]string{"original-filename": f.Name},
	})
	if err != nil {
		s.log.Error("upload attachment", zap.String("key", key), zap.Error(err))
		return nil, &Error{Kind: KindInternal, Op: op, Message: "Failed to upload file", Err: err}
	}

	msg, err := s.create(ctx, op, &model.Message{
		ID:          uuid.New().String(),
		InterviewID: interviewID,
		SenderID:    senderID,
		Message:     f.Name,
		MessageType: model.MessageFile,
		FileName:    f.Name,
		FilePath:    obj.Key,
		FileSize:    obj.Size,
		Timestamp:   s.now(),
	})
	if err != nil {
		if delErr := s.store.Delete(context.WithoutCancel(ctx), key); delErr != nil {
			s.log.Error("roll back attachment", zap.String("key", key), zap.Error(delErr))
		}
		return nil, err
	}
	return msg, nil
}

func (s *messageService) create(ctx context.Context, op string, m *model.Message) (*model.Message, error) {
	stored, err := s.repo.Create(ctx, m)
	if err != nil {
		return nil, s.fail(op, "Failed to send message", err)
	}
	s.publish(ctx, realtime.MessagesTopic(stored.InterviewID), realtime.TableMessages, realtime.EventInsert, stored, nil)
	return stored, nil
}

func (s *messageService) Update(ctx context.Context, id, text string) (*model.Message, error) {
	const op = "messages.update"
	switch {
	case id == "":
		return nil, invalid(op, "id is required")
	case text == "":
		return nil, invalid(op, "message is required")
	}
	m, err := s.repo.UpdateText(ctx, id, text, s.now())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(op, "Message not found")
		}
		return nil, s.fail(op, "Failed to update message", err)
	}
	s.publish(ctx, realtime.MessagesTopic(m.InterviewID), realtime.TableMessages, realtime.EventUpdate, m, nil)
	return m, nil
}

// Delete removes the attachment before the row so a failed storage call
// leaves the message in place.
func (s *messageService) Delete(ctx context.Context, id string) error {
	const op = "messages.delete"
	if id == "" {
		return invalid(op, "id is required")
	}
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return notFound(op, "Message not found")
		}
		return s.fail(op, "Failed to delete message", err)
	}

	if m.FilePath != "" && s.store != nil {
		if err := s.store.Delete(ctx, m.FilePath); err != nil {
			s.log.Error("delete attachment", zap.String("key", m.FilePath), zap.Error(err))
			return &Error{Kind: KindInternal, Op: op, Message: "Failed to delete message", Err: err}
		}
	}

	old, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return notFound(op, "Message not found")
		}
		return s.fail(op, "Failed to delete message", err)
	}
	s.publish(ctx, realtime.MessagesTopic(old.InterviewID), realtime.TableMessages, realtime.EventDelete, nil, old)
	return nil
}

func (s *messageService) AttachmentURL(ctx context.Context, id string) (string, error) {
	const op = "messages.attachment"
	if id == "" {
		return "", invalid(op, "id is required")
	}
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", notFound(op, "Message not found")
		}
		return "", s.fail(op, "Failed to load attachment", err)
	}
	if m.FilePath == "" {
		return "", notFound(op, "Message has no attachment")
	}
	if s.store == nil {
		return "", &Error{Kind: KindInternal, Op: op, Message: "File attachments are not available"}
	}
	u, err := s.store.PresignGet(ctx, m.FilePath, s.presignExpiry)
	if err != nil {
		s.log.Error("presign attachment", zap.String("key", m.FilePath), zap.Error(err))
		return "", &Error{Kind: KindInternal, Op: op, Message: "Failed to load attachment", Err: err}
	}
	return u, nil
}

func (s *messageService) Recent(ctx context.Context, userID string, limit int) ([]model.Message, error) {
	const op = "messages.recent"
	if userID == "" {
		return nil, invalid(op, "user id is required")
	}
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	items, err := s.repo.RecentForUser(ctx, userID, limit)
	if err != nil {
		return nil, s.fail(op, "Failed to load recent messages", err)
	}
	return items, nil
}

func (s *messageService) Subscribe(ctx context.Context, interviewID string, h realtime.Handler) (realtime.Subscription, error) {
	const op = "messages.subscribe"
	if interviewID == "" {
		return nil, invalid(op, "interview id is required")
	}
	return s.subscribe(ctx, op, realtime.MessagesTopic(interviewID), func(ev realtime.Event) {
		if ev.Type == realtime.EventInsert {
			ev = s.withSender(ctx, ev)
		}
		h(ev)
	})
}

// withSender re-reads an inserted message so the event carries the joined
// sender. Rows published by Send already carry it and are passed through.
// The original event is kept when the lookup fails.
func (s *messageService) withSender(ctx context.Context, ev realtime.Event) realtime.Event {
	var row struct {
		ID     string          `json:"id"`
		Sender json.RawMessage `json:"sender"`
	}
	if err := json.Unmarshal(ev.New, &row); err != nil || row.ID == "" {
		return ev
	}
	if len(row.Sender) > 0 && string(row.Sender) != "null" {
		return ev
	}
	m, err := s.repo.FindByID(ctx, row.ID)
	if err != nil {
		s.log.Warn("refetch inserted message", zap.String("message_id", row.ID), zap.Error(err))
		return ev
	}
	b, err := json.Marshal(m)
	if err != nil {
		return ev
	}
	ev.New = b
	return ev
}
