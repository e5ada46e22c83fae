package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"

	"interviewhub/internal/http/middleware"
	"interviewhub/internal/service"
)

// Services are the use cases exposed over HTTP.
type Services struct {
	Interviews     service.InterviewService
	Messages       service.MessageService
	CodingSessions service.CodingSessionService
}

// Options carry the infrastructure the routes need besides the services.
type Options struct {
	DB           *sql.DB
	Dependencies []Dependency
	// Auth guards every API route; nil means no authentication.
	Auth    fiber.Handler
	Metrics prometheus.Gatherer
	Stream  StreamConfig
}

// RegisterRoutes attaches every HTTP route to app. Probes and /metrics stay
// outside authentication.
func RegisterRoutes(app *fiber.App, svc Services, opt Options) {
	app.Get("/health", HealthCheck(opt.DB, opt.Dependencies...))
	app.Get("/healthz", LivenessProbe())
	if opt.Metrics != nil {
		app.Get("/metrics", middleware.MetricsHandler(opt.Metrics))
	}

	auth := opt.Auth
	if auth == nil {
		auth = middleware.Noop()
	}

	interviews := app.Group("/interviews", auth)
	interviews.Get("/", ListInterviews(svc.Interviews))
	interviews.Post("/", CreateInterview(svc.Interviews))
	interviews.Get("/upcoming", UpcomingInterviews(svc.Interviews))
	interviews.Get("/metrics", InterviewMetrics(svc.Interviews))
	interviews.Get("/:id", GetInterview(svc.Interviews))
	interviews.Patch("/:id", UpdateInterview(svc.Interviews))
	interviews.Delete("/:id", DeleteInterview(svc.Interviews))

	interviews.Get("/:id/messages", ListMessages(svc.Messages))
	interviews.Post("/:id/messages", SendMessage(svc.Messages))

	interviews.Get("/:id/coding-session", GetCodingSession(svc.CodingSessions))
	interviews.Put("/:id/coding-session", UpsertCodingSession(svc.CodingSessions))
	interviews.Put("/:id/coding-session/code", UpdateCode(svc.CodingSessions))
	interviews.Put("/:id/coding-session/data", SaveSessionData(svc.CodingSessions))

	messages := app.Group("/messages", auth)
	messages.Get("/recent", RecentMessages(svc.Messages))
	messages.Patch("/:id", UpdateMessage(svc.Messages))
	messages.Delete("/:id", DeleteMessage(svc.Messages))
	messages.Get("/:id/attachment", MessageAttachment(svc.Messages))

	app.Get("/coding-sessions", auth, ListCodingSessions(svc.CodingSessions))

	rt := app.Group("/realtime", auth)
	rt.Get("/interviews", InterviewStream(svc.Interviews, opt.Stream))
	rt.Get("/interviews/:id/messages", MessageStream(svc.Messages, opt.Stream))
	rt.Get("/interviews/:id/coding-session", CodingSessionStream(svc.CodingSessions, opt.Stream))
}
