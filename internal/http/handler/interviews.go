package handler

import (
	"github.com/gofiber/fiber/v2"

	"interviewhub/internal/model"
	"interviewhub/internal/service"
)

// ListInterviews returns interviews, newest schedule first.
//
// @Summary List interviews
// @Tags interviews
// @Produce json
// @Param status query string false "scheduled, in_progress, completed or cancelled"
// @Param type query string false "Interview type"
// @Param date_from query string false "RFC 3339 lower bound on scheduled_at"
// @Param date_to query string false "RFC 3339 upper bound on scheduled_at"
// @Param limit query int false "Maximum number of rows"
// @Success 200 {object} successPayload{data=[]model.Interview}
// @Failure 400 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /interviews [get]
func ListInterviews(svc service.InterviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in := service.ListInterviewsInput{
			Status: model.InterviewStatus(c.Query("status")),
			Type:   c.Query("type"),
		}
		var ok bool
		if in.Limit, ok = queryInt(c, "limit"); !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		if in.DateFrom, ok = queryTime(c, "date_from"); !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "date_from must be an RFC 3339 timestamp")
		}
		if in.DateTo, ok = queryTime(c, "date_to"); !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "date_to must be an RFC 3339 timestamp")
		}

		items, err := svc.List(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return writeOK(c, fiber.StatusOK, items)
	}
}

// GetInterview returns one interview with its coding session and chat.
//
// @Summary Get interview details
// @Tags interviews
// @Produce json
// @Param id path string true "Interview ID"
// @Success 200 {object} successPayload{data=model.InterviewDetail}
// @Failure 404 {object} errorPayload
// @Router /interviews/{id} [get]
func GetInterview(svc service.InterviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return writeOK(c, fiber.StatusOK, d)
	}
}

// CreateInterview schedules a new interview.
//
// @Summary Create interview
// @Tags interviews
// @Accept json
// @Produce json
// @Param body body service.CreateInterviewInput true "Interview"
// @Success 201 {object} successPayload{data=model.Interview}
// @Failure 400 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Router /interviews [post]
func CreateInterview(svc service.InterviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CreateInterviewInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		iv, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return writeOK(c, fiber.StatusCreated, iv)
	}
}

// UpdateInterview applies a partial update.
//
// @Summary Update interview
// @Tags interviews
// @Accept json
// @Produce json
// @Param id path string true "Interview ID"
// @Param body body model.InterviewPatch true "Fields to change"
// @Success 200 {object} successPayload{data=model.Interview}
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /interviews/{id} [patch]
func UpdateInterview(svc service.InterviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p model.InterviewPatch
		if err := c.BodyParser(&p); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		iv, err := svc.Update(c.UserContext(), c.Params("id"), p)
		if err != nil {
			return writeServiceError(c, err)
		}
		return writeOK(c, fiber.StatusOK, iv)
	}
}

// DeleteInterview removes an interview.
//
// @Summary Delete interview
// @Tags interviews
// @Param id path string true "Interview ID"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /interviews/{id} [delete]
func DeleteInterview(svc service.InterviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// UpcomingInterviews returns the next scheduled interviews.
//
// @Summary Upcoming interviews
// @Tags interviews
// @Produce json
// @Param limit query int false "Maximum number of rows (default 5)"
// @Success 200 {object} successPayload{data=[]model.Interview}
// @Router /interviews/upcoming [get]
func UpcomingInterviews(svc service.InterviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, ok := queryInt(c, "limit")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		items, err := svc.Upcoming(c.UserContext(), limit)
		if err != nil {
			return writeServiceError(c, err)
		}
		return writeOK(c, fiber.StatusOK, items)
	}
}

// InterviewMetrics returns dashboard numbers for the current user.
//
// @Summary Interview metrics
// @Tags interviews
// @Produce json
// @Param user_id query string false "User ID when authentication is disabled"
// @Param role query string false "interviewer or candidate"
// @Success 200 {object} successPayload{data=model.InterviewMetrics}
// @Router /interviews/metrics [get]
func InterviewMetrics(svc service.InterviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, role := currentUser(c)
		m, err := svc.Metrics(c.UserContext(), uid, role)
		if err != nil {
			return writeServiceError(c, err)
		}
		return writeOK(c, fiber.StatusOK, m)
	}
}
