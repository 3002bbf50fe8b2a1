package submissionHandler

import (
	submissionService "AutomatrixBackend/internal/api/submission/service"
	"AutomatrixBackend/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type SubmissionHandler struct {
	log               *logrus.Logger
	validator         *validator.Validate
	middleware        middleware.Middleware
	submissionService submissionService.SubmissionService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ss submissionService.SubmissionService,
) *SubmissionHandler {
	return &SubmissionHandler{
		log:               log,
		validator:         validate,
		middleware:        middleware,
		submissionService: ss,
	}
}

func (h *SubmissionHandler) Start(srv fiber.Router) {
	submissions := srv.Group("/submissions")

	// Creation is the only public write surface, so it sits behind the
	// per-IP rate limiter.
	submissions.Post("", h.middleware.NewRateLimiter, h.CreateSubmission)
	submissions.Get("", h.middleware.NewTokenMiddleware, h.GetSubmissions)
	submissions.Delete("", h.middleware.NewTokenMiddleware, h.DeleteSubmission)
}
