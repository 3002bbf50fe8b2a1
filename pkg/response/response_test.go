package response

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIs(t *testing.T) {
	base := NewError(500, "post not found")
	same := NewError(500, "post not found")
	other := NewError(400, "post not found")

	assert.True(t, errors.Is(base, same))
	assert.False(t, errors.Is(base, other))
}

func TestWithCauseKeepsIdentity(t *testing.T) {
	base := NewError(503, "database connection failed")
	cause := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

	wrapped := WithCause(base, cause)

	assert.True(t, errors.Is(wrapped, base))
	assert.Equal(t, "database connection failed", wrapped.Error())

	var respErr *Error
	assert.True(t, errors.As(wrapped, &respErr))
	assert.Equal(t, 503, respErr.Code)
	assert.Equal(t, cause.Error(), respErr.Detail())
}

func TestDetailWithoutCause(t *testing.T) {
	base := NewError(500, "Failed to fetch posts")

	var respErr *Error
	assert.True(t, errors.As(base, &respErr))
	assert.Equal(t, "Failed to fetch posts", respErr.Detail())
}
