package middleware

import (
	"AutomatrixBackend/internal/entity"
	jwtPkg "AutomatrixBackend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const (
	AccessTokenSecret = "JWT_ACCESS_TOKEN_SECRET"
)

// NewTokenMiddleware rejects requests without a valid session token.
// The 401 body stays generic so callers cannot tell which check failed.
func (m *middleware) NewTokenMiddleware(ctx *fiber.Ctx) error {
	admin, ok := m.adminFromToken(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
			"code":    "UNAUTHORIZED",
		})
	}

	ctx.Locals("admin", admin)
	return ctx.Next()
}

// NewOptionalTokenMiddleware attaches the admin identity when a valid token
// is present and lets the request through as anonymous otherwise. List
// endpoints use it to decide whether unpublished content is visible.
func (m *middleware) NewOptionalTokenMiddleware(ctx *fiber.Ctx) error {
	if admin, ok := m.adminFromToken(ctx); ok {
		ctx.Locals("admin", admin)
	}
	return ctx.Next()
}

func (m *middleware) adminFromToken(ctx *fiber.Ctx) (entity.AdminLoginData, bool) {
	authHeader := ctx.Get("Authorization")
	if authHeader == "" {
		return entity.AdminLoginData{}, false
	}

	adminToken, err := jwtPkg.VerifyTokenHeader(ctx, AccessTokenSecret)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"path":  ctx.Path(),
			"error": err.Error(),
		}).Warn("Token verification failed")
		return entity.AdminLoginData{}, false
	}

	claims, ok := adminToken.Claims.(jwt.MapClaims)
	if !ok {
		return entity.AdminLoginData{}, false
	}

	id, idOK := claims["id"].(string)
	email, emailOK := claims["email"].(string)
	name, nameOK := claims["name"].(string)
	if !idOK || !emailOK || !nameOK {
		m.log.WithFields(logrus.Fields{
			"path": ctx.Path(),
		}).Warn("Token claims are missing required fields")
		return entity.AdminLoginData{}, false
	}

	return entity.AdminLoginData{
		ID:    id,
		Email: email,
		Name:  name,
	}, true
}
