package handler

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"interviewhub/internal/service"
)

type updateCodeRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

type sessionDataRequest struct {
	SessionData json.RawMessage `json:"session_data" swaggertype:"object"`
}

// GetCodingSession returns the editor row, or null data before the first save.
//
// @Summary Get coding session
// @Tags coding-sessions
// @Produce json
// @Param id path string true "Interview ID"
// @Success 200 {object} successPayload{data=model.CodingSession}
// @Router /interviews/{id}/coding-session [get]
func GetCodingSession(svc service.CodingSessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cs, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return writeOK(c, fiber.StatusOK, cs)
	}
}

// UpsertCodingSession writes the whole editor row.
//
// @Summary Save coding session
// @Tags coding-sessions
// @Accept json
// @Produce json
// @Param id path string true "Interview ID"
// @Param body body service.UpsertCodingSessionInput true "Session"
// @Success 200 {object} successPayload{data=model.CodingSession}
// @Router /interviews/{id}/coding-session [put]
func UpsertCodingSession(svc service.CodingSessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.UpsertCodingSessionInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		cs, err := svc.Upsert(c.UserContext(), c.Params("id"), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return writeOK(c, fiber.StatusOK, cs)
	}
}

// UpdateCode saves the current code and language only.
//
// @Summary Save code
// @Tags coding-sessions
// @Accept json
// @Produce json
// @Param id path string true "Interview ID"
// @Param body body updateCodeRequest true "Code"
// @Success 200 {object} successPayload{data=model.CodingSession}
// @Router /interviews/{id}/coding-session/code [put]
func UpdateCode(svc service.CodingSessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req updateCodeRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		cs, err := svc.UpdateCode(c.UserContext(), c.Params("id"), req.Code, req.Language)
		if err != nil {
			return writeServiceError(c, err)
		}
		return writeOK(c, fiber.StatusOK, cs)
	}
}

// SaveSessionData saves the free-form editor state only.
//
// @Summary Save session data
// @Tags coding-sessions
// @Accept json
// @Produce json
// @Param id path string true "Interview ID"
// @Param body body sessionDataRequest true "Editor state"
// @Success 200 {object} successPayload{data=model.CodingSession}
// @Router /interviews/{id}/coding-session/data [put]
func SaveSessionData(svc service.CodingSessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req sessionDataRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		cs, err := svc.SaveSessionData(c.UserContext(), c.Params("id"), req.SessionData)
		if err != nil {
			return writeServiceError(c, err)
		}
		return writeOK(c, fiber.StatusOK, cs)
	}
}

// ListCodingSessions returns sessions of every interview the user took part in.
//
// @Summary List my coding sessions
// @Tags coding-sessions
// @Produce json
// @Param user_id query string false "User ID when authentication is disabled"
// @Param role query string false "interviewer or candidate"
// @Success 200 {object} successPayload{data=[]model.CodingSession}
// @Router /coding-sessions [get]
func ListCodingSessions(svc service.CodingSessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, role := currentUser(c)
		items, err := svc.ListForUser(c.UserContext(), uid, role)
		if err != nil {
			return writeServiceError(c, err)
		}
		return writeOK(c, fiber.StatusOK, items)
	}
}
