package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// UserIDLocalKey holds the token subject.
	UserIDLocalKey = "user_id"
	// RoleLocalKey holds the role claim.
	RoleLocalKey = "user_role"
)

// Claims is the bearer token payload. Subject is the user profile id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Auth verifies HS256 bearer tokens signed with secret and stores the
// subject and role in locals. An empty secret disables verification.
//
// Browsers cannot set headers on EventSource requests, so the token is also
// accepted from the access_token query parameter.
func Auth(secret string) fiber.Handler {
	if secret == "" {
		return Noop()
	}
	key := []byte(secret)
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	return func(c *fiber.Ctx) error {
		raw := bearerToken(c.Get(fiber.HeaderAuthorization))
		if raw == "" {
			raw = c.Query("access_token")
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		var claims Claims
		tok, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) { return key, nil })
		if err != nil || !tok.Valid || claims.Subject == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}

		c.Locals(UserIDLocalKey, claims.Subject)
		c.Locals(RoleLocalKey, claims.Role)
		return c.Next()
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
