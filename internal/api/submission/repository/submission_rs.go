package submissionRepository

import (
	"AutomatrixBackend/internal/entity"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SubmissionDB struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Message   string    `db:"message"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

func makeSubmission(row SubmissionDB) entity.ContactSubmission {
	return entity.ContactSubmission{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Message:   row.Message,
		Status:    row.Status,
		CreatedAt: row.CreatedAt,
	}
}

func (r *submissionsRepo) CreateSubmission(ctx context.Context, submission entity.ContactSubmission) error {
	argsKV := map[string]interface{}{
		"id":         submission.ID,
		"name":       submission.Name,
		"email":      submission.Email,
		"message":    submission.Message,
		"status":     submission.Status,
		"created_at": submission.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateSubmission, argsKV)
	if err != nil {
		return err
	}

	query = r.q.Rebind(query)
	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"submission_id": submission.ID,
		}).Error("failed to insert contact submission: ", err)
		return err
	}

	return nil
}

func (r *submissionsRepo) GetAllSubmissions(ctx context.Context) ([]entity.ContactSubmission, error) {
	var rows []SubmissionDB
	if err := r.q.SelectContext(ctx, &rows, queryGetAllSubmissions); err != nil {
		r.log.Error("failed to list contact submissions: ", err)
		return nil, err
	}

	result := make([]entity.ContactSubmission, 0, len(rows))
	for _, row := range rows {
		result = append(result, makeSubmission(row))
	}

	return result, nil
}

func (r *submissionsRepo) DeleteSubmission(ctx context.Context, id string) error {
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteSubmission, argsKV)
	if err != nil {
		return err
	}

	query = r.q.Rebind(query)
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"submission_id": id,
		}).Error("failed to delete contact submission: ", err)
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
