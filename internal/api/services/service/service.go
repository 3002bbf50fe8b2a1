package servicesService

import (
	services "AutomatrixBackend/internal/api/services"
	servicesRepository "AutomatrixBackend/internal/api/services/repository"
	"AutomatrixBackend/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ServicesService interface {
	GetAllServices(ctx context.Context, authenticated bool) ([]services.ServiceResponse, error)
	CreateService(ctx context.Context, request services.CreateServiceRequest) (services.ServiceResponse, error)
	UpdateService(ctx context.Context, request services.UpdateServiceRequest) (services.ServiceResponse, error)
	DeleteService(ctx context.Context, id string) error
}

func New(log *logrus.Logger, servicesRepo servicesRepository.Repository, utils utils.IUtils) ServicesService {
	return &servicesService{
		log:          log,
		servicesRepo: servicesRepo,
		utils:        utils,
	}
}

type servicesService struct {
	log          *logrus.Logger
	servicesRepo servicesRepository.Repository
	utils        utils.IUtils
}
