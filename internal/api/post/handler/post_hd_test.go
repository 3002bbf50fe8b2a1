package postHandler

import (
	posts "AutomatrixBackend/internal/api/post"
	"AutomatrixBackend/internal/middleware"
	jwtPkg "AutomatrixBackend/pkg/jwt"
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"
)

type fakePostService struct {
	listed        []posts.PostResponse
	listErr       error
	created       posts.PostResponse
	createErr     error
	updated       posts.PostResponse
	updateErr     error
	deleteErr     error
	authenticated bool
}

func (f *fakePostService) GetAllPosts(ctx context.Context, authenticated bool) ([]posts.PostResponse, error) {
	f.authenticated = authenticated
	return f.listed, f.listErr
}

func (f *fakePostService) CreatePost(ctx context.Context, request posts.CreatePostRequest) (posts.PostResponse, error) {
	return f.created, f.createErr
}

func (f *fakePostService) UpdatePost(ctx context.Context, request posts.UpdatePostRequest) (posts.PostResponse, error) {
	return f.updated, f.updateErr
}

func (f *fakePostService) DeletePost(ctx context.Context, id string) error {
	return f.deleteErr
}

func newTestApp(t *testing.T, svc *fakePostService) *fiber.App {
	t.Helper()
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New()
	handler := New(logger, validator.New(), middleware.New(logger), svc)
	handler.Start(app.Group("/api/v1"))

	return app
}

func signTestToken(t *testing.T) string {
	t.Helper()
	token, _, err := jwtPkg.Sign(map[string]interface{}{
		"id":    "1",
		"email": "admin@automatrix.dev",
		"name":  "Admin",
	}, time.Minute)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestGetPostsAnonymous(t *testing.T) {
	svc := &fakePostService{listed: []posts.PostResponse{{ID: "01A", Title: "live"}}}
	app := newTestApp(t, svc)

	req := httptest.NewRequest(fiber.MethodGet, "/api/v1/posts", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.False(t, svc.authenticated)

	var body []posts.PostResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "live", body[0].Title)
}

func TestGetPostsAuthenticated(t *testing.T) {
	svc := &fakePostService{listed: []posts.PostResponse{}}
	app := newTestApp(t, svc)

	req := httptest.NewRequest(fiber.MethodGet, "/api/v1/posts", nil)
	req.Header.Set("Authorization", signTestToken(t))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, svc.authenticated)
}

func TestGetPostsDatabaseUnavailable(t *testing.T) {
	svc := &fakePostService{listErr: posts.ErrDatabaseUnavailable}
	app := newTestApp(t, svc)

	req := httptest.NewRequest(fiber.MethodGet, "/api/v1/posts", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Database connection failed", body["message"])
}

func TestCreatePostRequiresToken(t *testing.T) {
	app := newTestApp(t, &fakePostService{})

	payload := bytes.NewBufferString(`{"title":"a","content":"b","description":"c"}`)
	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/posts", payload)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Unauthorized", body["message"])
}

func TestCreatePostValidation(t *testing.T) {
	app := newTestApp(t, &fakePostService{})

	payload := bytes.NewBufferString(`{"title":"only title"}`)
	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/posts", payload)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", signTestToken(t))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreatePost(t *testing.T) {
	svc := &fakePostService{created: posts.PostResponse{ID: "01B", Title: "a", Category: posts.DefaultCategory}}
	app := newTestApp(t, svc)

	payload := bytes.NewBufferString(`{"title":"a","content":"b","description":"c"}`)
	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/posts", payload)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", signTestToken(t))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body posts.PostResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "01B", body.ID)
	assert.Equal(t, posts.DefaultCategory, body.Category)
}

func TestUpdatePostRequiresID(t *testing.T) {
	app := newTestApp(t, &fakePostService{})

	payload := bytes.NewBufferString(`{"title":"renamed"}`)
	req := httptest.NewRequest(fiber.MethodPut, "/api/v1/posts", payload)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", signTestToken(t))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdatePostUnknownIDSurfacesAsServerError(t *testing.T) {
	svc := &fakePostService{updateErr: posts.ErrUpdatePost}
	app := newTestApp(t, svc)

	payload := bytes.NewBufferString(`{"id":"missing","title":"x"}`)
	req := httptest.NewRequest(fiber.MethodPut, "/api/v1/posts", payload)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", signTestToken(t))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestDeletePost(t *testing.T) {
	app := newTestApp(t, &fakePostService{})

	payload := bytes.NewBufferString(`{"id":"01C"}`)
	req := httptest.NewRequest(fiber.MethodDelete, "/api/v1/posts", payload)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", signTestToken(t))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Post deleted", body["message"])
}
