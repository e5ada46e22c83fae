package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Dependency is an optional backend checked by /health.
type Dependency struct {
	Name string
	Ping func(ctx context.Context) error
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthCheck pings the database and every extra dependency.
//
// @Summary Readiness probe
// @Tags health
// @Produce json
// @Success 200 {object} healthResponse
// @Failure 503 {object} healthResponse
// @Router /health [get]
func HealthCheck(db *sql.DB, deps ...Dependency) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		res := healthResponse{Status: "healthy", Checks: map[string]string{}}
		check := func(name string, err error) {
			if err != nil {
				res.Status = "unhealthy"
				res.Checks[name] = "unavailable"
				return
			}
			res.Checks[name] = "ok"
		}

		check("database", db.PingContext(ctx))
		for _, d := range deps {
			check(d.Name, d.Ping(ctx))
		}

		status := fiber.StatusOK
		if res.Status != "healthy" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(res)
	}
}

// LivenessProbe always answers 200 while the process serves requests.
//
// @Summary Liveness probe
// @Tags health
// @Success 200
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
