package servicesHandler

import (
	services "AutomatrixBackend/internal/api/services"
	contextPkg "AutomatrixBackend/pkg/context"
	"AutomatrixBackend/pkg/handlerUtil"
	jwtPkg "AutomatrixBackend/pkg/jwt"
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (h *ServicesHandler) GetServices(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	_, err := jwtPkg.GetAdminLoginData(ctx)
	authenticated := err == nil

	result, err := h.servicesService.GetAllServices(c, authenticated)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list services")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *ServicesHandler) CreateService(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	if _, err := jwtPkg.GetAdminLoginData(ctx); err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	var request services.CreateServiceRequest
	if err := ctx.BodyParser(&request); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(request); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	result, err := h.servicesService.CreateService(c, request)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create service")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *ServicesHandler) UpdateService(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	if _, err := jwtPkg.GetAdminLoginData(ctx); err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	var request services.UpdateServiceRequest
	if err := ctx.BodyParser(&request); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(request); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	result, err := h.servicesService.UpdateService(c, request)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update service")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *ServicesHandler) DeleteService(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	if _, err := jwtPkg.GetAdminLoginData(ctx); err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	var request services.DeleteServiceRequest
	if err := ctx.BodyParser(&request); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.servicesService.DeleteService(c, request.ID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete service")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Service deleted",
		})
	}
}
