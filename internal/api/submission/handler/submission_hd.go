package submissionHandler

import (
	submission "AutomatrixBackend/internal/api/submission"
	contextPkg "AutomatrixBackend/pkg/context"
	"AutomatrixBackend/pkg/handlerUtil"
	jwtPkg "AutomatrixBackend/pkg/jwt"
	"AutomatrixBackend/pkg/response"
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (h *SubmissionHandler) CreateSubmission(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var request submission.CreateSubmissionRequest
	if err := ctx.BodyParser(&request); err != nil {
		return errHandler.Handle(ctx, requestID, response.WithCause(submission.ErrProcessSubmission, err), ctx.Path(), "create submission")
	}

	if err := h.validator.Struct(request); err != nil {
		return errHandler.Handle(ctx, requestID, submission.ErrMissingFields, ctx.Path(), "create submission")
	}

	result, err := h.submissionService.CreateSubmission(c, request)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create submission")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, submission.CreateSubmissionResponse{
			Message: "Submission received",
			Data:    result,
		})
	}
}

func (h *SubmissionHandler) GetSubmissions(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	if _, err := jwtPkg.GetAdminLoginData(ctx); err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	result, err := h.submissionService.GetAllSubmissions(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list submissions")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *SubmissionHandler) DeleteSubmission(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	if _, err := jwtPkg.GetAdminLoginData(ctx); err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	var request submission.DeleteSubmissionRequest
	if err := ctx.BodyParser(&request); err != nil {
		return errHandler.Handle(ctx, requestID, submission.ErrMissingSubmissionID, ctx.Path(), "delete submission")
	}

	if request.ID == "" {
		return errHandler.Handle(ctx, requestID, submission.ErrMissingSubmissionID, ctx.Path(), "delete submission")
	}

	if err := h.submissionService.DeleteSubmission(c, request.ID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete submission")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Submission deleted",
		})
	}
}
