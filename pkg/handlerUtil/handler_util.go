package handlerUtil

import (
	"AutomatrixBackend/pkg/log"
	"AutomatrixBackend/pkg/response"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

// Handle maps domain errors onto the wire contract: coded errors keep their
// code, 5xx responses carry the underlying message for operator diagnosis,
// anything unrecognized becomes a generic 500.
func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	var respErr *response.Error
	if errors.As(err, &respErr) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      respErr.Detail(),
			"code":       respErr.Code,
			"path":       path,
			"operation":  operation,
		}).Warn("Operation failed with error response")

		switch {
		case respErr.Code >= fiber.StatusInternalServerError:
			return c.Status(respErr.Code).JSON(fiber.Map{
				"status":  "error",
				"message": respErr.Error(),
				"error":   respErr.Detail(),
			})
		case respErr.Code == fiber.StatusUnauthorized:
			return c.Status(respErr.Code).JSON(fiber.Map{
				"message": respErr.Error(),
				"code":    "UNAUTHORIZED",
			})
		case respErr.Code == fiber.StatusBadRequest:
			return c.Status(respErr.Code).JSON(fiber.Map{
				"message": respErr.Error(),
				"code":    "VALIDATION_ERROR",
			})
		default:
			return c.Status(respErr.Code).JSON(fiber.Map{
				"message": respErr.Error(),
			})
		}
	}

	// Unexpected failures get a trace id so the log line can be found again
	// from an operator report.
	log.ErrorWithTraceID(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}, "Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"status":  "error",
		"message": "An unexpected error occurred",
		"error":   err.Error(),
	})
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": err.Error(),
		"code":    "VALIDATION_ERROR",
	})
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(utils.StatusMessage(fiber.StatusRequestTimeout))
}

func (h *ErrorHandler) HandleUnauthorized(c *fiber.Ctx, requestID string, message string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"path":       c.Path(),
		"message":    message,
	}).Warn("Unauthorized access")

	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": message,
		"code":    "UNAUTHORIZED",
	})
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
