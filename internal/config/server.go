package config

import (
	"AutomatrixBackend/database/postgres"
	authHandler "AutomatrixBackend/internal/api/auth/handler"
	authService "AutomatrixBackend/internal/api/auth/service"
	postHandler "AutomatrixBackend/internal/api/post/handler"
	postRepository "AutomatrixBackend/internal/api/post/repository"
	postService "AutomatrixBackend/internal/api/post/service"
	servicesHandler "AutomatrixBackend/internal/api/services/handler"
	servicesRepository "AutomatrixBackend/internal/api/services/repository"
	servicesService "AutomatrixBackend/internal/api/services/service"
	submissionHandler "AutomatrixBackend/internal/api/submission/handler"
	submissionRepository "AutomatrixBackend/internal/api/submission/repository"
	submissionService "AutomatrixBackend/internal/api/submission/service"
	"AutomatrixBackend/internal/middleware"
	"AutomatrixBackend/pkg/google"
	"AutomatrixBackend/pkg/utils"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ServerOption func(*Server) error

type Server struct {
	engine         *fiber.App
	db             *sqlx.DB
	log            *logrus.Logger
	middleware     middleware.Middleware
	validator      *validator.Validate
	utils          utils.IUtils
	handlers       []handler
	googleProvider google.ItfGoogle
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithGoogleProvider(provider google.ItfGoogle) ServerOption {
	return func(s *Server) error {
		s.googleProvider = provider
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authServices := authService.New(s.log, s.googleProvider)
	authHandlers := authHandler.New(s.log, s.validator, s.middleware, authServices, s.googleProvider)

	// Blog Posts
	postRepo := postRepository.New(s.db, s.log)
	postServices := postService.New(s.log, postRepo, s.utils)
	postHandlers := postHandler.New(s.log, s.validator, s.middleware, postServices)

	// Service Listings
	servicesRepo := servicesRepository.New(s.db, s.log)
	servicesServices := servicesService.New(s.log, servicesRepo, s.utils)
	servicesHandlers := servicesHandler.New(s.log, s.validator, s.middleware, servicesServices)

	// Contact Submissions
	submissionRepo := submissionRepository.New(s.db, s.log)
	submissionServices := submissionService.New(s.log, submissionRepo, s.utils)
	submissionHandlers := submissionHandler.New(s.log, s.validator, s.middleware, submissionServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, authHandlers, postHandlers, servicesHandlers, submissionHandlers)
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	router := s.engine.Group("/api/v1")

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

// Shutdown stops accepting new connections, then releases the database pool.
func (s *Server) Shutdown() error {
	if err := s.engine.Shutdown(); err != nil {
		return err
	}

	if s.db != nil {
		return s.db.Close()
	}

	return nil
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})

	// Connectivity probe used by the deployment to verify the data store
	// before flipping traffic over.
	s.engine.Get("/api/v1/test", func(ctx *fiber.Ctx) error {
		c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.db.PingContext(c); err != nil {
			s.log.Errorf("Database connectivity probe failed: %v", err)
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status":  "error",
				"message": "Database connection failed",
				"error":   err.Error(),
			})
		}

		return ctx.JSON(fiber.Map{
			"status":  "ok",
			"message": "Database connected",
		})
	})
}
