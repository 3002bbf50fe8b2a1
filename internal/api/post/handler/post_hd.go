package postHandler

import (
	posts "AutomatrixBackend/internal/api/post"
	contextPkg "AutomatrixBackend/pkg/context"
	"AutomatrixBackend/pkg/handlerUtil"
	jwtPkg "AutomatrixBackend/pkg/jwt"
	"AutomatrixBackend/pkg/log"
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetPosts lists posts newest first. Anonymous callers only see published
// posts; a valid session widens the listing to drafts as well.
func (h *PostHandler) GetPosts(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	_, err := jwtPkg.GetAdminLoginData(ctx)
	authenticated := err == nil

	h.log.WithFields(log.Fields{
		"request_id":    requestID,
		"authenticated": authenticated,
	}).Info("Listing blog posts")

	result, err := h.postService.GetAllPosts(c, authenticated)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list posts")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *PostHandler) CreatePost(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	admin, err := jwtPkg.GetAdminLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	var request posts.CreatePostRequest
	if err := ctx.BodyParser(&request); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(request); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"admin":      admin.Email,
		"title":      request.Title,
	}).Info("Creating blog post")

	result, err := h.postService.CreatePost(c, request)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create post")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *PostHandler) UpdatePost(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	admin, err := jwtPkg.GetAdminLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	var request posts.UpdatePostRequest
	if err := ctx.BodyParser(&request); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(request); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"admin":      admin.Email,
		"post_id":    request.ID,
	}).Info("Updating blog post")

	result, err := h.postService.UpdatePost(c, request)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update post")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *PostHandler) DeletePost(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	admin, err := jwtPkg.GetAdminLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	var request posts.DeletePostRequest
	if err := ctx.BodyParser(&request); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"admin":      admin.Email,
		"post_id":    request.ID,
	}).Info("Deleting blog post")

	if err := h.postService.DeletePost(c, request.ID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete post")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Post deleted",
		})
	}
}
