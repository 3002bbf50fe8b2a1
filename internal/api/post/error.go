package posts

import (
	"AutomatrixBackend/pkg/response"
	"net/http"
)

var (
	// Unknown ids are reported as a data-layer failure, not a 404.
	ErrPostNotFound        = response.NewError(http.StatusInternalServerError, "post not found")
	ErrFetchPosts          = response.NewError(http.StatusInternalServerError, "Failed to fetch posts")
	ErrCreatePost          = response.NewError(http.StatusInternalServerError, "Error creating post")
	ErrUpdatePost          = response.NewError(http.StatusInternalServerError, "Error updating post")
	ErrDeletePost          = response.NewError(http.StatusInternalServerError, "Error deleting post")
	ErrDatabaseUnavailable = response.NewError(http.StatusServiceUnavailable, "Database connection failed")
)
