package submission

import (
	"AutomatrixBackend/pkg/response"
	"net/http"
)

var (
	ErrMissingFields       = response.NewError(http.StatusBadRequest, "Missing required fields")
	ErrMissingSubmissionID = response.NewError(http.StatusBadRequest, "Missing submission ID")
	// Unknown ids are reported as a data-layer failure, not a 404.
	ErrSubmissionNotFound = response.NewError(http.StatusInternalServerError, "submission not found")
	// Unparseable bodies are a processing failure, not a field validation
	// failure; only well-formed JSON missing fields gets the 400.
	ErrProcessSubmission = response.NewError(http.StatusInternalServerError, "Error processing submission")
	ErrFetchSubmissions    = response.NewError(http.StatusInternalServerError, "Failed to fetch submissions")
	ErrCreateSubmission    = response.NewError(http.StatusInternalServerError, "Error creating submission")
	ErrDeleteSubmission    = response.NewError(http.StatusInternalServerError, "Error deleting submission")
	ErrDatabaseUnavailable = response.NewError(http.StatusServiceUnavailable, "Database connection failed")
)
