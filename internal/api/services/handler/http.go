package servicesHandler

import (
	servicesService "AutomatrixBackend/internal/api/services/service"
	"AutomatrixBackend/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ServicesHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	servicesService servicesService.ServicesService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ss servicesService.ServicesService,
) *ServicesHandler {
	return &ServicesHandler{
		log:             log,
		validator:       validate,
		middleware:      middleware,
		servicesService: ss,
	}
}

func (h *ServicesHandler) Start(srv fiber.Router) {
	services := srv.Group("/services")

	services.Get("", h.middleware.NewOptionalTokenMiddleware, h.GetServices)
	services.Post("", h.middleware.NewTokenMiddleware, h.CreateService)
	services.Put("", h.middleware.NewTokenMiddleware, h.UpdateService)
	services.Delete("", h.middleware.NewTokenMiddleware, h.DeleteService)
}
