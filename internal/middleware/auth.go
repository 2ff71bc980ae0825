package middleware

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"rebrain/internal/auth"
	"rebrain/internal/models"
)

// userIDKey is the Locals key holding the authenticated user's id.
const userIDKey = "userID"

// AuthMiddleware authenticates requests by their bearer token.
type AuthMiddleware struct {
	tokens *auth.TokenIssuer
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokens *auth.TokenIssuer) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth rejects requests without a valid token in the Authorization
// header. The raw token and "Bearer <token>" are both accepted.
func (m *AuthMiddleware) RequireAuth(c fiber.Ctx) error {
	token := tokenFromHeader(c.Get(fiber.HeaderAuthorization))
	if token == "" {
		return forbidden(c, "Token missing or malformed")
	}

	userID, err := m.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			slog.Debug("rejected expired token", "path", c.Path())
		}
		return forbidden(c, "Invalid token")
	}

	c.Locals(userIDKey, userID)
	return c.Next()
}

// UserID returns the id stored by RequireAuth.
func UserID(c fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(userIDKey).(uuid.UUID)
	return id, ok
}

func tokenFromHeader(header string) string {
	fields := strings.Fields(header)
	switch {
	case len(fields) == 1 && !strings.EqualFold(fields[0], "bearer"):
		return fields[0]
	case len(fields) == 2 && strings.EqualFold(fields[0], "bearer"):
		return fields[1]
	}
	return ""
}

func forbidden(c fiber.Ctx, message string) error {
	return c.Status(fiber.StatusForbidden).JSON(models.MessageResponse{Message: message})
}
