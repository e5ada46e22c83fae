package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"interviewhub/internal/http/middleware"
	"interviewhub/internal/model"
	"interviewhub/internal/service"
	serviceMocks "interviewhub/internal/service/mocks"
)

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func TestListInterviews(t *testing.T) {
	mockSvc := new(serviceMocks.MockInterviewService)
	app := newTestApp()
	app.Get("/interviews", ListInterviews(mockSvc))

	t.Run("passes filters", func(t *testing.T) {
		from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		mockSvc.On("List", mock.Anything, service.ListInterviewsInput{
			Status:   model.StatusScheduled,
			Type:     "technical",
			DateFrom: &from,
			Limit:    20,
		}).Return([]model.Interview{{ID: "int-1"}}, nil).Once()

		resp := do(t, app, httptest.NewRequest(http.MethodGet, "/interviews?status=scheduled&type=technical&date_from=2025-03-01T00:00:00Z&limit=20", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var items []model.Interview
		decodeOK(t, resp, &items)
		require.Len(t, items, 1)
		assert.Equal(t, "int-1", items[0].ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("bad limit", func(t *testing.T) {
		resp := do(t, app, httptest.NewRequest(http.MethodGet, "/interviews?limit=abc", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_LIMIT", decodeErr(t, resp).Code)
	})

	t.Run("bad date", func(t *testing.T) {
		resp := do(t, app, httptest.NewRequest(http.MethodGet, "/interviews?date_to=yesterday", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_DATE", decodeErr(t, resp).Code)
	})

	t.Run("network failure", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, service.ListInterviewsInput{}).
			Return(nil, &service.Error{Kind: service.KindNetwork, Message: service.NetworkMessage}).Once()

		resp := do(t, app, httptest.NewRequest(http.MethodGet, "/interviews", nil))

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, service.NetworkMessage, decodeErr(t, resp).Error)
	})
}

func TestGetInterview(t *testing.T) {
	mockSvc := new(serviceMocks.MockInterviewService)
	app := newTestApp()
	app.Get("/interviews/:id", GetInterview(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, "int-1").Return(&model.InterviewDetail{
			Interview:      model.Interview{ID: "int-1", Title: "Backend"},
			CodingSessions: []model.CodingSession{},
			Messages:       []model.Message{{ID: "m1"}},
		}, nil).Once()

		resp := do(t, app, httptest.NewRequest(http.MethodGet, "/interviews/int-1", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var d map[string]any
		decodeOK(t, resp, &d)
		assert.Equal(t, "Backend", d["title"])
		assert.Len(t, d["interview_messages"], 1)
		assert.NotNil(t, d["coding_sessions"])
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, "nope").
			Return(nil, &service.Error{Kind: service.KindNotFound, Message: "Interview not found"}).Once()

		resp := do(t, app, httptest.NewRequest(http.MethodGet, "/interviews/nope", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Interview not found", decodeErr(t, resp).Error)
	})
}

func TestCreateInterview(t *testing.T) {
	mockSvc := new(serviceMocks.MockInterviewService)
	app := newTestApp()
	app.Post("/interviews", CreateInterview(mockSvc))

	t.Run("created", func(t *testing.T) {
		at := time.Date(2025, 4, 1, 15, 0, 0, 0, time.UTC)
		mockSvc.On("Create", mock.Anything, service.CreateInterviewInput{
			Title:         "Backend",
			InterviewerID: "iv-1",
			CandidateID:   "cd-1",
			ScheduledAt:   at,
		}).Return(&model.Interview{ID: "int-1", Title: "Backend"}, nil).Once()

		resp := do(t, app, jsonRequest(http.MethodPost, "/interviews",
			`{"title":"Backend","interviewer_id":"iv-1","candidate_id":"cd-1","scheduled_at":"2025-04-01T15:00:00Z"}`))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var iv model.Interview
		decodeOK(t, resp, &iv)
		assert.Equal(t, "int-1", iv.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp := do(t, app, jsonRequest(http.MethodPost, "/interviews", `{"title":`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decodeErr(t, resp).Code)
	})

	t.Run("validation", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, service.CreateInterviewInput{}).
			Return(nil, &service.Error{Kind: service.KindValidation, Message: "title is required"}).Once()

		resp := do(t, app, jsonRequest(http.MethodPost, "/interviews", `{}`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeErr(t, resp)
		assert.Equal(t, "VALIDATION_ERROR", body.Code)
		assert.Equal(t, "title is required", body.Error)
	})
}

func TestUpdateInterview(t *testing.T) {
	mockSvc := new(serviceMocks.MockInterviewService)
	app := newTestApp()
	app.Patch("/interviews/:id", UpdateInterview(mockSvc))

	rating := 5
	status := model.StatusCompleted
	mockSvc.On("Update", mock.Anything, "int-1", model.InterviewPatch{Status: &status, Rating: &rating}).
		Return(&model.Interview{ID: "int-1", Status: status, Rating: &rating}, nil).Once()

	resp := do(t, app, jsonRequest(http.MethodPatch, "/interviews/int-1", `{"status":"completed","rating":5}`))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var iv model.Interview
	decodeOK(t, resp, &iv)
	require.NotNil(t, iv.Rating)
	assert.Equal(t, 5, *iv.Rating)
	mockSvc.AssertExpectations(t)
}

func TestDeleteInterview(t *testing.T) {
	mockSvc := new(serviceMocks.MockInterviewService)
	app := newTestApp()
	app.Delete("/interviews/:id", DeleteInterview(mockSvc))

	mockSvc.On("Delete", mock.Anything, "int-1").Return(nil).Once()
	mockSvc.On("Delete", mock.Anything, "int-2").Return(errors.New("unexpected")).Once()

	resp := do(t, app, httptest.NewRequest(http.MethodDelete, "/interviews/int-1", nil))
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, app, httptest.NewRequest(http.MethodDelete, "/interviews/int-2", nil))
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "internal server error", decodeErr(t, resp).Error)
}

func TestUpcomingInterviews(t *testing.T) {
	mockSvc := new(serviceMocks.MockInterviewService)
	app := newTestApp()
	app.Get("/interviews/upcoming", UpcomingInterviews(mockSvc))

	mockSvc.On("Upcoming", mock.Anything, 0).Return([]model.Interview{}, nil).Once()

	resp := do(t, app, httptest.NewRequest(http.MethodGet, "/interviews/upcoming", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestInterviewMetrics(t *testing.T) {
	mockSvc := new(serviceMocks.MockInterviewService)
	metrics := &model.InterviewMetrics{UpcomingCount: 2, CompletedCount: 4, AverageRating: 3.7, SuccessRate: 50}

	t.Run("identity from query", func(t *testing.T) {
		app := newTestApp()
		app.Get("/interviews/metrics", InterviewMetrics(mockSvc))
		mockSvc.On("Metrics", mock.Anything, "u-1", model.RoleCandidate).Return(metrics, nil).Once()

		resp := do(t, app, httptest.NewRequest(http.MethodGet, "/interviews/metrics?user_id=u-1&role=candidate", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var got map[string]any
		decodeOK(t, resp, &got)
		assert.Equal(t, 3.7, got["averageRating"])
		assert.Equal(t, float64(50), got["successRate"])
	})

	t.Run("token identity wins", func(t *testing.T) {
		app := newTestApp()
		app.Use(func(c *fiber.Ctx) error {
			c.Locals(middleware.UserIDLocalKey, "u-9")
			c.Locals(middleware.RoleLocalKey, "interviewer")
			return c.Next()
		})
		app.Get("/interviews/metrics", InterviewMetrics(mockSvc))
		mockSvc.On("Metrics", mock.Anything, "u-9", model.RoleInterviewer).Return(metrics, nil).Once()

		resp := do(t, app, httptest.NewRequest(http.MethodGet, "/interviews/metrics?user_id=u-1", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}
