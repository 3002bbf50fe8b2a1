package authHandler

import (
	"AutomatrixBackend/internal/api/auth"
	jwtPkg "AutomatrixBackend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// HandleSession lets the presentation layer check whether its stored token
// still names a valid session.
func (h *AuthHandler) HandleSession(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	admin, err := jwtPkg.GetAdminLoginData(ctx)
	if err != nil {
		h.log.WithFields(map[string]interface{}{
			"request_id": requestID,
			"path":       ctx.Path(),
		}).Warn("Session lookup without admin identity")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
			"code":    "UNAUTHORIZED",
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(auth.AdminResponse{
		ID:    admin.ID,
		Email: admin.Email,
		Name:  admin.Name,
	})
}
