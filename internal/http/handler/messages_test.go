package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"interviewhub/internal/http/middleware"
	"interviewhub/internal/model"
	"interviewhub/internal/service"
	serviceMocks "interviewhub/internal/service/mocks"
)

func multipartRequest(t *testing.T, target string, fields map[string]string, fileName string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileName != "" {
		part, err := w.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	return req
}

func TestListMessages(t *testing.T) {
	mockSvc := new(serviceMocks.MockMessageService)
	app := newTestApp()
	app.Get("/interviews/:id/messages", ListMessages(mockSvc))

	mockSvc.On("List", mock.Anything, "int-1").Return([]model.Message{{ID: "m1"}, {ID: "m2"}}, nil).Once()

	resp := do(t, app, httptest.NewRequest(http.MethodGet, "/interviews/int-1/messages", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var items []model.Message
	decodeOK(t, resp, &items)
	assert.Len(t, items, 2)
}

func TestSendMessage(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockMessageService)
		app := newTestApp()
		app.Post("/interviews/:id/messages", SendMessage(mockSvc))
		mockSvc.On("Send", mock.Anything, "int-1", "u-1", "hello", model.MessageType("")).
			Return(&model.Message{ID: "m1", Message: "hello", MessageType: model.MessageText}, nil).Once()

		resp := do(t, app, jsonRequest(http.MethodPost, "/interviews/int-1/messages", `{"sender_id":"u-1","message":"hello"}`))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var m model.Message
		decodeOK(t, resp, &m)
		assert.Equal(t, model.MessageText, m.MessageType)
		mockSvc.AssertExpectations(t)
	})

	t.Run("token sender wins over body", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockMessageService)
		app := newTestApp()
		app.Use(func(c *fiber.Ctx) error {
			c.Locals(middleware.UserIDLocalKey, "u-9")
			return c.Next()
		})
		app.Post("/interviews/:id/messages", SendMessage(mockSvc))
		mockSvc.On("Send", mock.Anything, "int-1", "u-9", "hi", model.MessageCode).
			Return(&model.Message{ID: "m1"}, nil).Once()

		resp := do(t, app, jsonRequest(http.MethodPost, "/interviews/int-1/messages",
			`{"sender_id":"u-1","message":"hi","message_type":"code"}`))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("validation", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockMessageService)
		app := newTestApp()
		app.Post("/interviews/:id/messages", SendMessage(mockSvc))
		mockSvc.On("Send", mock.Anything, "int-1", "", "", model.MessageType("")).
			Return(nil, &service.Error{Kind: service.KindValidation, Message: "sender_id is required"}).Once()

		resp := do(t, app, jsonRequest(http.MethodPost, "/interviews/int-1/messages", `{}`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "sender_id is required", decodeErr(t, resp).Error)
	})

	t.Run("file upload", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockMessageService)
		app := newTestApp()
		app.Post("/interviews/:id/messages", SendMessage(mockSvc))

		content := []byte("print('hi')")
		mockSvc.On("SendFile", mock.Anything, "int-1", "u-1", mock.MatchedBy(func(f service.FileUpload) bool {
			body, err := io.ReadAll(f.Body)
			return err == nil && f.Name == "solution.py" && f.Size == int64(len(content)) &&
				f.ContentType == fiber.MIMEOctetStream && bytes.Equal(body, content)
		})).Return(&model.Message{ID: "m2", MessageType: model.MessageFile, FileName: "solution.py"}, nil).Once()

		resp := do(t, app, multipartRequest(t, "/interviews/int-1/messages",
			map[string]string{"sender_id": "u-1"}, "solution.py", content))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var m model.Message
		decodeOK(t, resp, &m)
		assert.Equal(t, "solution.py", m.FileName)
		mockSvc.AssertExpectations(t)
	})

	t.Run("multipart without file", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockMessageService)
		app := newTestApp()
		app.Post("/interviews/:id/messages", SendMessage(mockSvc))

		resp := do(t, app, multipartRequest(t, "/interviews/int-1/messages",
			map[string]string{"sender_id": "u-1"}, "", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "FILE_REQUIRED", decodeErr(t, resp).Code)
		mockSvc.AssertNotCalled(t, "SendFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUpdateMessage(t *testing.T) {
	mockSvc := new(serviceMocks.MockMessageService)
	app := newTestApp()
	app.Patch("/messages/:id", UpdateMessage(mockSvc))

	mockSvc.On("Update", mock.Anything, "m1", "edited").Return(&model.Message{ID: "m1", Message: "edited"}, nil).Once()
	mockSvc.On("Update", mock.Anything, "nope", "edited").
		Return(nil, &service.Error{Kind: service.KindNotFound, Message: "Message not found"}).Once()

	resp := do(t, app, jsonRequest(http.MethodPatch, "/messages/m1", `{"message":"edited"}`))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, app, jsonRequest(http.MethodPatch, "/messages/nope", `{"message":"edited"}`))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeErr(t, resp).Code)
}

func TestDeleteMessage(t *testing.T) {
	mockSvc := new(serviceMocks.MockMessageService)
	app := newTestApp()
	app.Delete("/messages/:id", DeleteMessage(mockSvc))

	mockSvc.On("Delete", mock.Anything, "m1").Return(nil).Once()

	resp := do(t, app, httptest.NewRequest(http.MethodDelete, "/messages/m1", nil))

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestMessageAttachment(t *testing.T) {
	const signed = "https://objects.example.com/interviewhub/messages/int-1/abc.py?X-Amz-Signature=x"

	mockSvc := new(serviceMocks.MockMessageService)
	app := newTestApp()
	app.Get("/messages/:id/attachment", MessageAttachment(mockSvc))
	mockSvc.On("AttachmentURL", mock.Anything, "m2").Return(signed, nil)
	mockSvc.On("AttachmentURL", mock.Anything, "m1").
		Return("", &service.Error{Kind: service.KindNotFound, Message: "Message has no attachment"})

	t.Run("json", func(t *testing.T) {
		resp := do(t, app, httptest.NewRequest(http.MethodGet, "/messages/m2/attachment", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var out attachmentResponse
		decodeOK(t, resp, &out)
		assert.Equal(t, signed, out.URL)
	})

	t.Run("redirect", func(t *testing.T) {
		resp := do(t, app, httptest.NewRequest(http.MethodGet, "/messages/m2/attachment?redirect=true", nil))

		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, signed, resp.Header.Get(fiber.HeaderLocation))
	})

	t.Run("no attachment", func(t *testing.T) {
		resp := do(t, app, httptest.NewRequest(http.MethodGet, "/messages/m1/attachment", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Message has no attachment", decodeErr(t, resp).Error)
	})
}

func TestRecentMessages(t *testing.T) {
	mockSvc := new(serviceMocks.MockMessageService)
	app := newTestApp()
	app.Get("/messages/recent", RecentMessages(mockSvc))

	mockSvc.On("Recent", mock.Anything, "u-1", 3).Return([]model.Message{{ID: "m1"}}, nil).Once()

	resp := do(t, app, httptest.NewRequest(http.MethodGet, "/messages/recent?user_id=u-1&limit=3", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, app, httptest.NewRequest(http.MethodGet, "/messages/recent?user_id=u-1&limit=-1", nil))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_LIMIT", decodeErr(t, resp).Code)
	mockSvc.AssertExpectations(t)
}
