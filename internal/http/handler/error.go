package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"interviewhub/internal/http/middleware"
	"interviewhub/internal/service"
)

// successPayload wraps every successful response body.
type successPayload struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// errorPayload is the body of every failed response.
type errorPayload struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id"`
}

func requestIDFromCtx(c *fiber.Ctx) string {
	if s, ok := c.Locals(middleware.RequestIDLocalKey).(string); ok {
		return s
	}
	return ""
}

func writeOK(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(successPayload{Success: true, Data: data})
}

// writeError renders the error envelope. message must be safe for clients.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		Success:   false,
		Error:     message,
		Code:      code,
		RequestID: requestIDFromCtx(c),
	})
}

// writeServiceError maps a service failure to its status. Only the
// service's user-facing message is exposed.
func writeServiceError(c *fiber.Ctx, err error) error {
	var se *service.Error
	if !errors.As(err, &se) {
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
	status, code := statusForKind(se.Kind)
	return writeError(c, status, code, se.Message)
}

func statusForKind(k service.Kind) (int, string) {
	switch k {
	case service.KindValidation:
		return fiber.StatusBadRequest, "VALIDATION_ERROR"
	case service.KindNotFound:
		return fiber.StatusNotFound, "NOT_FOUND"
	case service.KindBackend:
		return fiber.StatusUnprocessableEntity, "DATABASE_ERROR"
	case service.KindNetwork:
		return fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"
	default:
		return fiber.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

// ErrorHandler renders errors that escape handlers, such as unknown routes
// and rejected tokens, in the same envelope.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if !errors.As(err, &fe) {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		switch fe.Code {
		case fiber.StatusNotFound:
			return writeError(c, fe.Code, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, fe.Code, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusInternalServerError:
			return writeError(c, fe.Code, "INTERNAL_ERROR", "internal server error")
		default:
			return writeError(c, fe.Code, codeForStatus(fe.Code), fe.Message)
		}
	}
}

// codeForStatus turns 401 into "UNAUTHORIZED", 413 into "REQUEST_ENTITY_TOO_LARGE" and so on.
func codeForStatus(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "ERROR"
	}
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}
