package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"interviewhub/internal/http/middleware"
	"interviewhub/internal/model"
)

// queryInt reads an optional non-negative integer query parameter.
func queryInt(c *fiber.Ctx, key string) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// queryTime reads an optional RFC 3339 timestamp query parameter.
func queryTime(c *fiber.Ctx, key string) (*time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, false
	}
	return &t, true
}

// currentUser prefers the verified token identity and falls back to the
// user_id and role query parameters when authentication is disabled.
func currentUser(c *fiber.Ctx) (string, model.Role) {
	if uid, ok := c.Locals(middleware.UserIDLocalKey).(string); ok && uid != "" {
		role, _ := c.Locals(middleware.RoleLocalKey).(string)
		return uid, model.Role(role)
	}
	return c.Query("user_id"), model.Role(c.Query("role"))
}

// senderOr returns the authenticated user, or fallback when there is none.
func senderOr(c *fiber.Ctx, fallback string) string {
	if uid, ok := c.Locals(middleware.UserIDLocalKey).(string); ok && uid != "" {
		return uid
	}
	return fallback
}
