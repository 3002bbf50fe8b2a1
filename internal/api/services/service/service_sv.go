package servicesService

import (
	services "AutomatrixBackend/internal/api/services"
	"AutomatrixBackend/internal/entity"
	"AutomatrixBackend/pkg/response"
	"database/sql"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func makeServiceResponse(service entity.Service) services.ServiceResponse {
	features := []string(service.Features)
	if features == nil {
		features = []string{}
	}

	return services.ServiceResponse{
		ID:          service.ID,
		Name:        service.Name,
		Description: service.Description,
		Benefits:    service.Benefits,
		Features:    features,
		Icon:        service.Icon,
		Published:   service.Published,
		CreatedAt:   service.CreatedAt,
		UpdatedAt:   service.UpdatedAt,
	}
}

func applyServiceDefaults(service *entity.Service) {
	if service.Icon == "" {
		service.Icon = services.DefaultIcon
	}
	if service.Features == nil {
		service.Features = []string{}
	}
}

func (s *servicesService) GetAllServices(ctx context.Context, authenticated bool) ([]services.ServiceResponse, error) {
	if err := s.servicesRepo.Ping(ctx); err != nil {
		s.log.Error("database unreachable while listing services: ", err)
		return nil, response.WithCause(services.ErrDatabaseUnavailable, err)
	}

	repoClient, err := s.servicesRepo.NewClient(false)
	if err != nil {
		return nil, response.WithCause(services.ErrFetchServices, err)
	}

	list, err := repoClient.Services.GetAllServices(ctx, !authenticated)
	if err != nil {
		return nil, response.WithCause(services.ErrFetchServices, err)
	}

	result := make([]services.ServiceResponse, 0, len(list))
	for _, service := range list {
		result = append(result, makeServiceResponse(service))
	}

	return result, nil
}

func (s *servicesService) CreateService(ctx context.Context, request services.CreateServiceRequest) (services.ServiceResponse, error) {
	now := time.Now()

	id, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		return services.ServiceResponse{}, response.WithCause(services.ErrCreateService, err)
	}

	service := entity.Service{
		ID:          id,
		Name:        request.Name,
		Description: request.Description,
		Benefits:    request.Benefits,
		Features:    request.Features,
		Icon:        request.Icon,
		Published:   request.Published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	applyServiceDefaults(&service)

	repoClient, err := s.servicesRepo.NewClient(true)
	if err != nil {
		return services.ServiceResponse{}, response.WithCause(services.ErrCreateService, err)
	}
	defer func() {
		_ = repoClient.Rollback()
	}()

	if err := repoClient.Services.CreateService(ctx, service); err != nil {
		return services.ServiceResponse{}, response.WithCause(services.ErrCreateService, err)
	}

	if err := repoClient.Commit(); err != nil {
		return services.ServiceResponse{}, response.WithCause(services.ErrCreateService, err)
	}

	s.log.WithFields(logrus.Fields{
		"service_id": service.ID,
	}).Info("service created")

	return makeServiceResponse(service), nil
}

// UpdateService overwrites the whole record, same contract as blog posts.
func (s *servicesService) UpdateService(ctx context.Context, request services.UpdateServiceRequest) (services.ServiceResponse, error) {
	repoClient, err := s.servicesRepo.NewClient(true)
	if err != nil {
		return services.ServiceResponse{}, response.WithCause(services.ErrUpdateService, err)
	}
	defer func() {
		_ = repoClient.Rollback()
	}()

	existing, err := repoClient.Services.GetServiceByID(ctx, request.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.log.WithFields(logrus.Fields{
				"service_id": request.ID,
			}).Warn("update requested for unknown service")
			return services.ServiceResponse{}, response.WithCause(services.ErrUpdateService, services.ErrServiceNotFound)
		}
		return services.ServiceResponse{}, response.WithCause(services.ErrUpdateService, err)
	}

	service := entity.Service{
		ID:          request.ID,
		Name:        request.Name,
		Description: request.Description,
		Benefits:    request.Benefits,
		Features:    request.Features,
		Icon:        request.Icon,
		Published:   request.Published,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now(),
	}
	applyServiceDefaults(&service)

	if err := repoClient.Services.UpdateService(ctx, service); err != nil {
		return services.ServiceResponse{}, response.WithCause(services.ErrUpdateService, err)
	}

	if err := repoClient.Commit(); err != nil {
		return services.ServiceResponse{}, response.WithCause(services.ErrUpdateService, err)
	}

	s.log.WithFields(logrus.Fields{
		"service_id": service.ID,
	}).Info("service updated")

	return makeServiceResponse(service), nil
}

func (s *servicesService) DeleteService(ctx context.Context, id string) error {
	repoClient, err := s.servicesRepo.NewClient(true)
	if err != nil {
		return response.WithCause(services.ErrDeleteService, err)
	}
	defer func() {
		_ = repoClient.Rollback()
	}()

	if err := repoClient.Services.DeleteService(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.log.WithFields(logrus.Fields{
				"service_id": id,
			}).Warn("delete requested for unknown service")
			return response.WithCause(services.ErrDeleteService, services.ErrServiceNotFound)
		}
		return response.WithCause(services.ErrDeleteService, err)
	}

	if err := repoClient.Commit(); err != nil {
		return response.WithCause(services.ErrDeleteService, err)
	}

	s.log.WithFields(logrus.Fields{
		"service_id": id,
	}).Info("service deleted")

	return nil
}
