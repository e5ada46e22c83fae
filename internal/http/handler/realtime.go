package handler

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"interviewhub/internal/realtime"
	"interviewhub/internal/service"
)

// StreamConfig tunes server-sent event streams.
type StreamConfig struct {
	KeepAlive time.Duration
	Buffer    int
	Log       *zap.Logger
}

func (sc StreamConfig) withDefaults() StreamConfig {
	if sc.KeepAlive <= 0 {
		sc.KeepAlive = 25 * time.Second
	}
	if sc.Buffer <= 0 {
		sc.Buffer = 64
	}
	if sc.Log == nil {
		sc.Log = zap.NewNop()
	}
	return sc
}

type openFunc func(ctx context.Context, h realtime.Handler) (realtime.Subscription, error)

// InterviewStream streams every interview change.
//
// @Summary Interview changes (SSE)
// @Tags realtime
// @Produce text/event-stream
// @Success 200
// @Router /realtime/interviews [get]
func InterviewStream(svc service.InterviewService, sc StreamConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return stream(c, sc.withDefaults(), svc.Subscribe)
	}
}

// MessageStream streams chat changes of one interview.
//
// @Summary Chat changes (SSE)
// @Tags realtime
// @Produce text/event-stream
// @Param id path string true "Interview ID"
// @Success 200
// @Router /realtime/interviews/{id}/messages [get]
func MessageStream(svc service.MessageService, sc StreamConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		return stream(c, sc.withDefaults(), func(ctx context.Context, h realtime.Handler) (realtime.Subscription, error) {
			return svc.Subscribe(ctx, id, h)
		})
	}
}

// CodingSessionStream streams editor changes of one interview.
//
// @Summary Editor changes (SSE)
// @Tags realtime
// @Produce text/event-stream
// @Param id path string true "Interview ID"
// @Success 200
// @Router /realtime/interviews/{id}/coding-session [get]
func CodingSessionStream(svc service.CodingSessionService, sc StreamConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		return stream(c, sc.withDefaults(), func(ctx context.Context, h realtime.Handler) (realtime.Subscription, error) {
			return svc.Subscribe(ctx, id, h)
		})
	}
}

// stream opens the subscription before answering so a failure still gets a
// JSON error. The subscription lives until the client goes away.
func stream(c *fiber.Ctx, sc StreamConfig, open openFunc) error {
	events := make(chan realtime.Event, sc.Buffer)
	ctx, cancel := context.WithCancel(context.Background())

	sub, err := open(ctx, func(ev realtime.Event) {
		select {
		case events <- ev:
		default:
			sc.Log.Warn("realtime stream buffer full, dropping event", zap.String("table", ev.Table))
		}
	})
	if err != nil {
		cancel()
		return writeServiceError(c, err)
	}

	rid := requestIDFromCtx(c)
	topic := sub.Topic()
	sc.Log.Debug("realtime stream opened", zap.String("topic", topic), zap.String("request_id", rid))

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()
		defer func() { _ = sub.Close() }()
		err := writeEvents(ctx, w, events, sc.KeepAlive)
		sc.Log.Debug("realtime stream closed", zap.String("topic", topic), zap.String("request_id", rid), zap.Error(err))
	}))
	return nil
}

// writeEvents copies events to w until ctx ends or a write fails, which is
// how a disconnected client shows up.
func writeEvents(ctx context.Context, w *bufio.Writer, events <-chan realtime.Event, keepAlive time.Duration) error {
	if _, err := w.WriteString(": connected\n\n"); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}

	ticker := time.NewTicker(keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			payload, err := json.Marshal(ev)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", strings.ToLower(string(ev.Type)), payload); err != nil {
				return err
			}
		case <-ticker.C:
			if _, err := w.WriteString(": keepalive\n\n"); err != nil {
				return err
			}
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}
}
