package postHandler

import (
	postService "AutomatrixBackend/internal/api/post/service"
	"AutomatrixBackend/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PostHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	postService postService.PostService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ps postService.PostService,
) *PostHandler {
	return &PostHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		postService: ps,
	}
}

func (h *PostHandler) Start(srv fiber.Router) {
	posts := srv.Group("/posts")

	posts.Get("", h.middleware.NewOptionalTokenMiddleware, h.GetPosts)
	posts.Post("", h.middleware.NewTokenMiddleware, h.CreatePost)
	posts.Put("", h.middleware.NewTokenMiddleware, h.UpdatePost)
	posts.Delete("", h.middleware.NewTokenMiddleware, h.DeletePost)
}
