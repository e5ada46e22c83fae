package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"interviewhub/internal/model"
	"interviewhub/internal/service"
	serviceMocks "interviewhub/internal/service/mocks"
)

func TestGetCodingSession(t *testing.T) {
	mockSvc := new(serviceMocks.MockCodingSessionService)
	app := newTestApp()
	app.Get("/interviews/:id/coding-session", GetCodingSession(mockSvc))

	t.Run("existing", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, "int-1").
			Return(&model.CodingSession{ID: "cs-1", InterviewID: "int-1", Language: "go"}, nil).Once()

		resp := do(t, app, httptest.NewRequest(http.MethodGet, "/interviews/int-1/coding-session", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var cs model.CodingSession
		decodeOK(t, resp, &cs)
		assert.Equal(t, "go", cs.Language)
	})

	t.Run("not saved yet", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, "int-2").Return(nil, nil).Once()

		resp := do(t, app, httptest.NewRequest(http.MethodGet, "/interviews/int-2/coding-session", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body okBody
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.True(t, body.Success)
		assert.Equal(t, "null", string(body.Data))
	})
}

func TestUpsertCodingSession(t *testing.T) {
	mockSvc := new(serviceMocks.MockCodingSessionService)
	app := newTestApp()
	app.Put("/interviews/:id/coding-session", UpsertCodingSession(mockSvc))

	mockSvc.On("Upsert", mock.Anything, "int-1", service.UpsertCodingSessionInput{
		Language:    "python",
		FinalCode:   "print(1)",
		SessionData: json.RawMessage(`{"cursor":1}`),
	}).Return(&model.CodingSession{ID: "cs-1"}, nil).Once()

	resp := do(t, app, jsonRequest(http.MethodPut, "/interviews/int-1/coding-session",
		`{"language":"python","final_code":"print(1)","session_data":{"cursor":1}}`))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestUpdateCode(t *testing.T) {
	mockSvc := new(serviceMocks.MockCodingSessionService)
	app := newTestApp()
	app.Put("/interviews/:id/coding-session/code", UpdateCode(mockSvc))

	mockSvc.On("UpdateCode", mock.Anything, "int-1", "fmt.Println()", "go").
		Return(&model.CodingSession{ID: "cs-1", FinalCode: "fmt.Println()"}, nil).Once()
	mockSvc.On("UpdateCode", mock.Anything, "int-2", "x", "").
		Return(nil, &service.Error{Kind: service.KindBackend, Message: "insert or update on table violates foreign key constraint"}).Once()

	resp := do(t, app, jsonRequest(http.MethodPut, "/interviews/int-1/coding-session/code", `{"code":"fmt.Println()","language":"go"}`))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, app, jsonRequest(http.MethodPut, "/interviews/int-2/coding-session/code", `{"code":"x"}`))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "DATABASE_ERROR", decodeErr(t, resp).Code)
	mockSvc.AssertExpectations(t)
}

func TestSaveSessionData(t *testing.T) {
	mockSvc := new(serviceMocks.MockCodingSessionService)
	app := newTestApp()
	app.Put("/interviews/:id/coding-session/data", SaveSessionData(mockSvc))

	mockSvc.On("SaveSessionData", mock.Anything, "int-1", json.RawMessage(`{"cursor":12}`)).
		Return(&model.CodingSession{ID: "cs-1", SessionData: json.RawMessage(`{"cursor":12}`)}, nil).Once()

	resp := do(t, app, jsonRequest(http.MethodPut, "/interviews/int-1/coding-session/data", `{"session_data":{"cursor":12}}`))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var cs model.CodingSession
	decodeOK(t, resp, &cs)
	assert.JSONEq(t, `{"cursor":12}`, string(cs.SessionData))
	mockSvc.AssertExpectations(t)
}

func TestListCodingSessions(t *testing.T) {
	mockSvc := new(serviceMocks.MockCodingSessionService)
	app := newTestApp()
	app.Get("/coding-sessions", ListCodingSessions(mockSvc))

	mockSvc.On("ListForUser", mock.Anything, "u-1", model.RoleInterviewer).
		Return([]model.CodingSession{{ID: "cs-1"}}, nil).Once()

	resp := do(t, app, httptest.NewRequest(http.MethodGet, "/coding-sessions?user_id=u-1&role=interviewer", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var items []model.CodingSession
	decodeOK(t, resp, &items)
	assert.Len(t, items, 1)
	mockSvc.AssertExpectations(t)
}
