package services

import (
	"AutomatrixBackend/pkg/response"
	"net/http"
)

var (
	// Unknown ids are reported as a data-layer failure, not a 404.
	ErrServiceNotFound     = response.NewError(http.StatusInternalServerError, "service not found")
	ErrFetchServices       = response.NewError(http.StatusInternalServerError, "Failed to fetch services")
	ErrCreateService       = response.NewError(http.StatusInternalServerError, "Error creating service")
	ErrUpdateService       = response.NewError(http.StatusInternalServerError, "Error updating service")
	ErrDeleteService       = response.NewError(http.StatusInternalServerError, "Error deleting service")
	ErrDatabaseUnavailable = response.NewError(http.StatusServiceUnavailable, "Database connection failed")
)
