package submissionService

import (
	submission "AutomatrixBackend/internal/api/submission"
	submissionRepository "AutomatrixBackend/internal/api/submission/repository"
	"AutomatrixBackend/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SubmissionService interface {
	CreateSubmission(ctx context.Context, request submission.CreateSubmissionRequest) (submission.SubmissionResponse, error)
	GetAllSubmissions(ctx context.Context) ([]submission.SubmissionResponse, error)
	DeleteSubmission(ctx context.Context, id string) error
}

func New(log *logrus.Logger, submissionRepo submissionRepository.Repository, utils utils.IUtils) SubmissionService {
	return &submissionService{
		log:            log,
		submissionRepo: submissionRepo,
		utils:          utils,
	}
}

type submissionService struct {
	log            *logrus.Logger
	submissionRepo submissionRepository.Repository
	utils          utils.IUtils
}
