package servicesHandler

import (
	services "AutomatrixBackend/internal/api/services"
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

type fakeServicesService struct {
	listed        []services.ServiceResponse
	listErr       error
	created       services.ServiceResponse
	createErr     error
	updated       services.ServiceResponse
	updateErr     error
	deleteErr     error
	authenticated bool
	mutated       bool
}

func (f *fakeServicesService) GetAllServices(ctx context.Context, authenticated bool) ([]services.ServiceResponse, error) {
	f.authenticated = authenticated
	return f.listed, f.listErr
}

func (f *fakeServicesService) CreateService(ctx context.Context, request services.CreateServiceRequest) (services.ServiceResponse, error) {
	f.mutated = true
	return f.created, f.createErr
}

func (f *fakeServicesService) UpdateService(ctx context.Context, request services.UpdateServiceRequest) (services.ServiceResponse, error) {
	f.mutated = true
	return f.updated, f.updateErr
}

func (f *fakeServicesService) DeleteService(ctx context.Context, id string) error {
	f.mutated = true
	return f.deleteErr
}

func newTestApp(t *testing.T, svc *fakeServicesService) *fiber.App {
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

func TestGetServicesAnonymous(t *testing.T) {
	svc := &fakeServicesService{listed: []services.ServiceResponse{{ID: "01A", Name: "live"}}}
	app := newTestApp(t, svc)

	req := httptest.NewRequest(fiber.MethodGet, "/api/v1/services", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.False(t, svc.authenticated)

	var body []services.ServiceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "live", body[0].Name)
}

func TestGetServicesAuthenticated(t *testing.T) {
	svc := &fakeServicesService{listed: []services.ServiceResponse{}}
	app := newTestApp(t, svc)

	req := httptest.NewRequest(fiber.MethodGet, "/api/v1/services", nil)
	req.Header.Set("Authorization", signTestToken(t))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, svc.authenticated)
}

func TestServiceWritesRequireToken(t *testing.T) {
	tests := []struct {
		name   string
		method string
		body   string
	}{
		{"create", fiber.MethodPost, `{"name":"a","description":"b","benefits":"c"}`},
		{"update", fiber.MethodPut, `{"id":"01B","name":"a"}`},
		{"delete", fiber.MethodDelete, `{"id":"01B"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeServicesService{}
			app := newTestApp(t, svc)

			req := httptest.NewRequest(tt.method, "/api/v1/services", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
			assert.False(t, svc.mutated)

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, "Unauthorized", body["message"])
		})
	}
}

func TestCreateService(t *testing.T) {
	svc := &fakeServicesService{created: services.ServiceResponse{
		ID:       "01C",
		Name:     "Automation",
		Icon:     services.DefaultIcon,
		Features: []string{},
	}}
	app := newTestApp(t, svc)

	payload := bytes.NewBufferString(`{"name":"Automation","description":"d","benefits":"b"}`)
	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/services", payload)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", signTestToken(t))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body services.ServiceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "01C", body.ID)
	assert.Equal(t, services.DefaultIcon, body.Icon)
}

func TestCreateServiceValidation(t *testing.T) {
	app := newTestApp(t, &fakeServicesService{})

	payload := bytes.NewBufferString(`{"name":"only name"}`)
	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/services", payload)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", signTestToken(t))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDeleteService(t *testing.T) {
	app := newTestApp(t, &fakeServicesService{})

	payload := bytes.NewBufferString(`{"id":"01D"}`)
	req := httptest.NewRequest(fiber.MethodDelete, "/api/v1/services", payload)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", signTestToken(t))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Service deleted", body["message"])
}
