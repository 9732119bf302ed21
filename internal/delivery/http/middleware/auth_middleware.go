package middleware

import (
	"strings"

	"job-bridge/internal/domain/user"
	"job-bridge/internal/pkg/jwt"
	"job-bridge/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

const CtxIdentityKey = "identity"

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

// Middleware rejects requests without a valid access token and stores the
// caller's user.Identity in the request locals.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := BearerToken(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, response.CodeUnauthenticated, "Access token required", nil, nil)
		}

		identity, err := m.Identify(token)
		if err != nil {
			return err
		}

		c.Locals(CtxIdentityKey, identity)
		return c.Next()
	}
}

// Identify validates an access token. Expired, forged and refresh tokens
// all fail the same way.
func (m *AuthMiddleware) Identify(token string) (user.Identity, error) {
	claims, err := m.jwt.ValidateAccessToken(token)
	if err != nil {
		return user.Identity{}, NewAppError(fiber.StatusForbidden, response.CodeInvalidToken, "Invalid token", nil, err)
	}
	role, ok := user.ParseRole(claims.Role)
	if !ok {
		return user.Identity{}, NewAppError(fiber.StatusForbidden, response.CodeInvalidToken, "Invalid token", nil, nil)
	}
	return user.Identity{ID: claims.UserID, Username: claims.Username, Role: role}, nil
}

// RequireRole admits callers whose identity carries one of roles. With no
// roles any authenticated caller passes.
func RequireRole(roles ...user.Role) fiber.Handler {
	return func(c fiber.Ctx) error {
		identity, ok := IdentityFrom(c)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, response.CodeUnauthenticated, "Access token required", nil, nil)
		}
		if !identity.HasRole(roles...) {
			return NewAppError(fiber.StatusForbidden, response.CodeForbidden, "Access denied", nil, nil)
		}
		return c.Next()
	}
}

func IdentityFrom(c fiber.Ctx) (user.Identity, bool) {
	identity, ok := c.Locals(CtxIdentityKey).(user.Identity)
	return identity, ok
}

func BearerToken(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
