package submissionService

import (
	submission "AutomatrixBackend/internal/api/submission"
	"AutomatrixBackend/internal/entity"
	"AutomatrixBackend/pkg/response"
	"database/sql"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func makeSubmissionResponse(sub entity.ContactSubmission) submission.SubmissionResponse {
	return submission.SubmissionResponse{
		ID:        sub.ID,
		Name:      sub.Name,
		Email:     sub.Email,
		Message:   sub.Message,
		Status:    sub.Status,
		CreatedAt: sub.CreatedAt,
	}
}

// CreateSubmission stores a contact-form entry. The status is always forced
// to "new"; the form cannot choose its own triage state.
func (s *submissionService) CreateSubmission(ctx context.Context, request submission.CreateSubmissionRequest) (submission.SubmissionResponse, error) {
	now := time.Now()

	id, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		return submission.SubmissionResponse{}, response.WithCause(submission.ErrCreateSubmission, err)
	}

	sub := entity.ContactSubmission{
		ID:        id,
		Name:      request.Name,
		Email:     request.Email,
		Message:   request.Message,
		Status:    submission.StatusNew,
		CreatedAt: now,
	}

	repoClient, err := s.submissionRepo.NewClient(true)
	if err != nil {
		return submission.SubmissionResponse{}, response.WithCause(submission.ErrCreateSubmission, err)
	}
	defer func() {
		_ = repoClient.Rollback()
	}()

	if err := repoClient.Submissions.CreateSubmission(ctx, sub); err != nil {
		return submission.SubmissionResponse{}, response.WithCause(submission.ErrCreateSubmission, err)
	}

	if err := repoClient.Commit(); err != nil {
		return submission.SubmissionResponse{}, response.WithCause(submission.ErrCreateSubmission, err)
	}

	s.log.WithFields(logrus.Fields{
		"submission_id": sub.ID,
	}).Info("contact submission received")

	return makeSubmissionResponse(sub), nil
}

func (s *submissionService) GetAllSubmissions(ctx context.Context) ([]submission.SubmissionResponse, error) {
	if err := s.submissionRepo.Ping(ctx); err != nil {
		s.log.Error("database unreachable while listing submissions: ", err)
		return nil, response.WithCause(submission.ErrDatabaseUnavailable, err)
	}

	repoClient, err := s.submissionRepo.NewClient(false)
	if err != nil {
		return nil, response.WithCause(submission.ErrFetchSubmissions, err)
	}

	list, err := repoClient.Submissions.GetAllSubmissions(ctx)
	if err != nil {
		return nil, response.WithCause(submission.ErrFetchSubmissions, err)
	}

	result := make([]submission.SubmissionResponse, 0, len(list))
	for _, sub := range list {
		result = append(result, makeSubmissionResponse(sub))
	}

	return result, nil
}

func (s *submissionService) DeleteSubmission(ctx context.Context, id string) error {
	repoClient, err := s.submissionRepo.NewClient(true)
	if err != nil {
		return response.WithCause(submission.ErrDeleteSubmission, err)
	}
	defer func() {
		_ = repoClient.Rollback()
	}()

	if err := repoClient.Submissions.DeleteSubmission(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.log.WithFields(logrus.Fields{
				"submission_id": id,
			}).Warn("delete requested for unknown submission")
			return response.WithCause(submission.ErrDeleteSubmission, submission.ErrSubmissionNotFound)
		}
		return response.WithCause(submission.ErrDeleteSubmission, err)
	}

	if err := repoClient.Commit(); err != nil {
		return response.WithCause(submission.ErrDeleteSubmission, err)
	}

	s.log.WithFields(logrus.Fields{
		"submission_id": id,
	}).Info("contact submission deleted")

	return nil
}
