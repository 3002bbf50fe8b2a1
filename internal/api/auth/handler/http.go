package authHandler

import (
	authService "AutomatrixBackend/internal/api/auth/service"
	"AutomatrixBackend/internal/middleware"
	"AutomatrixBackend/pkg/google"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	authService    authService.AuthService
	googleProvider google.ItfGoogle
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	as authService.AuthService,
	googleProvider google.ItfGoogle,
) *AuthHandler {
	return &AuthHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		authService:    as,
		googleProvider: googleProvider,
	}
}

func (h *AuthHandler) Start(srv fiber.Router) {
	auth := srv.Group("/auth")

	auth.Get("/login-gl", h.HandleGoogleLogin)
	auth.Get("/callback-gl", h.CallBackFromGoogle)
	auth.Post("/logout", h.HandleLogout)
	auth.Get("/session", h.middleware.NewTokenMiddleware, h.HandleSession)
}
