package auth

import (
	"AutomatrixBackend/pkg/response"
	"net/http"
)

var (
	// Kept deliberately generic so callers cannot tell whether the
	// credential check or the allow-list check failed.
	ErrEmailNotAuthorized  = response.NewError(http.StatusUnauthorized, "Unauthorized")
	ErrNoAuthorizationCode = response.NewError(http.StatusBadRequest, "No authorization code provided")
	ErrSignToken           = response.NewError(http.StatusInternalServerError, "failed to create session token")
)
