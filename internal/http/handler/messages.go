package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"interviewhub/internal/model"
	"interviewhub/internal/service"
)

type sendMessageRequest struct {
	SenderID    string            `json:"sender_id" form:"sender_id"`
	Message     string            `json:"message" form:"message"`
	MessageType model.MessageType `json:"message_type" form:"message_type"`
}

type updateMessageRequest struct {
	Message string `json:"message"`
}

type attachmentResponse struct {
	URL string `json:"url"`
}

// ListMessages returns the chat of one interview in posting order.
//
// @Summary List messages
// @Tags messages
// @Produce json
// @Param id path string true "Interview ID"
// @Success 200 {object} successPayload{data=[]model.Message}
// @Router /interviews/{id}/messages [get]
func ListMessages(svc service.MessageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return writeOK(c, fiber.StatusOK, items)
	}
}

// SendMessage posts a chat line, or a file when the body is multipart with
// a "file" field.
//
// @Summary Send message
// @Tags messages
// @Accept json,mpfd
// @Produce json
// @Param id path string true "Interview ID"
// @Param body body sendMessageRequest false "Text message"
// @Param file formData file false "Attachment"
// @Success 201 {object} successPayload{data=model.Message}
// @Failure 400 {object} errorPayload
// @Router /interviews/{id}/messages [post]
func SendMessage(svc service.MessageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		interviewID := c.Params("id")
		var req sendMessageRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		sender := senderOr(c, req.SenderID)

		if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
			return sendFile(c, svc, interviewID, sender)
		}

		m, err := svc.Send(c.UserContext(), interviewID, sender, req.Message, req.MessageType)
		if err != nil {
			return writeServiceError(c, err)
		}
		return writeOK(c, fiber.StatusCreated, m)
	}
}

func sendFile(c *fiber.Ctx, svc service.MessageService, interviewID, sender string) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
	}
	f, err := fh.Open()
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
	}
	defer f.Close()

	ct := fh.Header.Get(fiber.HeaderContentType)
	if ct == "" {
		ct = fiber.MIMEOctetStream
	}

	m, err := svc.SendFile(c.UserContext(), interviewID, sender, service.FileUpload{
		Name:        fh.Filename,
		ContentType: ct,
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeOK(c, fiber.StatusCreated, m)
}

// UpdateMessage edits the text of a message.
//
// @Summary Edit message
// @Tags messages
// @Accept json
// @Produce json
// @Param id path string true "Message ID"
// @Param body body updateMessageRequest true "New text"
// @Success 200 {object} successPayload{data=model.Message}
// @Failure 404 {object} errorPayload
// @Router /messages/{id} [patch]
func UpdateMessage(svc service.MessageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req updateMessageRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		m, err := svc.Update(c.UserContext(), c.Params("id"), req.Message)
		if err != nil {
			return writeServiceError(c, err)
		}
		return writeOK(c, fiber.StatusOK, m)
	}
}

// DeleteMessage removes a message and its attachment.
//
// @Summary Delete message
// @Tags messages
// @Param id path string true "Message ID"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /messages/{id} [delete]
func DeleteMessage(svc service.MessageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// MessageAttachment returns a presigned download URL. With ?redirect=true
// the client is sent straight to it.
//
// @Summary Attachment download link
// @Tags messages
// @Produce json
// @Param id path string true "Message ID"
// @Param redirect query bool false "Redirect to the object"
// @Success 200 {object} successPayload{data=attachmentResponse}
// @Success 302
// @Failure 404 {object} errorPayload
// @Router /messages/{id}/attachment [get]
func MessageAttachment(svc service.MessageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := svc.AttachmentURL(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		if c.QueryBool("redirect") {
			return c.Redirect(u, fiber.StatusFound)
		}
		return writeOK(c, fiber.StatusOK, attachmentResponse{URL: u})
	}
}

// RecentMessages returns the newest messages across the user's interviews.
//
// @Summary Recent messages
// @Tags messages
// @Produce json
// @Param user_id query string false "User ID when authentication is disabled"
// @Param limit query int false "Maximum number of rows (default 10)"
// @Success 200 {object} successPayload{data=[]model.Message}
// @Router /messages/recent [get]
func RecentMessages(svc service.MessageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, ok := queryInt(c, "limit")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		uid, _ := currentUser(c)
		items, err := svc.Recent(c.UserContext(), uid, limit)
		if err != nil {
			return writeServiceError(c, err)
		}
		return writeOK(c, fiber.StatusOK, items)
	}
}
