package middleware

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func validClaims() Claims {
	return Claims{
		Role: "interviewer",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func newAuthApp(secret string) *fiber.App {
	app := fiber.New()
	app.Use(Auth(secret))
	app.Get("/me", func(c *fiber.Ctx) error {
		uid, _ := c.Locals(UserIDLocalKey).(string)
		role, _ := c.Locals(RoleLocalKey).(string)
		return c.SendString(uid + "|" + role)
	})
	return app
}

func TestAuth(t *testing.T) {
	app := newAuthApp(testSecret)
	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	noExpiry := validClaims()
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name   string
		header string
		query  string
		status int
		body   string
	}{
		{name: "valid header", header: "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims()), status: fiber.StatusOK, body: "u-1|interviewer"},
		{name: "lowercase scheme", header: "bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims()), status: fiber.StatusOK, body: "u-1|interviewer"},
		{name: "query token", query: "?access_token=" + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims()), status: fiber.StatusOK, body: "u-1|interviewer"},
		{name: "missing", status: fiber.StatusUnauthorized},
		{name: "wrong secret", header: "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("other"), validClaims()), status: fiber.StatusUnauthorized},
		{name: "wrong algorithm", header: "Bearer " + signToken(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims()), status: fiber.StatusUnauthorized},
		{name: "expired", header: "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), expired), status: fiber.StatusUnauthorized},
		{name: "no expiry", header: "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noExpiry), status: fiber.StatusUnauthorized},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", status: fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			if tt.body != "" {
				body, _ := io.ReadAll(resp.Body)
				assert.Equal(t, tt.body, string(body))
			}
		})
	}
}

func TestAuth_DisabledWithoutSecret(t *testing.T) {
	resp, err := newAuthApp("").Test(httptest.NewRequest("GET", "/me", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
