package servicesRepository

import (
	"AutomatrixBackend/internal/entity"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ServiceDB struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Description string         `db:"description"`
	Benefits    string         `db:"benefits"`
	Features    pq.StringArray `db:"features"`
	Icon        sql.NullString `db:"icon"`
	Published   bool           `db:"published"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func makeService(row ServiceDB) entity.Service {
	return entity.Service{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Benefits:    row.Benefits,
		Features:    row.Features,
		Icon:        row.Icon.String,
		Published:   row.Published,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func (r *servicesRepo) CreateService(ctx context.Context, service entity.Service) error {
	argsKV := map[string]interface{}{
		"id":          service.ID,
		"name":        service.Name,
		"description": service.Description,
		"benefits":    service.Benefits,
		"features":    service.Features,
		"icon":        service.Icon,
		"published":   service.Published,
		"created_at":  service.CreatedAt,
		"updated_at":  service.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateService, argsKV)
	if err != nil {
		return err
	}

	query = r.q.Rebind(query)
	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"service_id": service.ID,
		}).Error("failed to insert service: ", err)
		return err
	}

	return nil
}

func (r *servicesRepo) GetServiceByID(ctx context.Context, id string) (entity.Service, error) {
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetServiceByID, argsKV)
	if err != nil {
		return entity.Service{}, err
	}

	query = r.q.Rebind(query)

	var row ServiceDB
	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		return entity.Service{}, err
	}

	return makeService(row), nil
}

func (r *servicesRepo) GetAllServices(ctx context.Context, publishedOnly bool) ([]entity.Service, error) {
	query := queryGetAllServices
	if publishedOnly {
		query = queryGetPublishedServices
	}

	var rows []ServiceDB
	if err := r.q.SelectContext(ctx, &rows, query); err != nil {
		r.log.Error("failed to list services: ", err)
		return nil, err
	}

	result := make([]entity.Service, 0, len(rows))
	for _, row := range rows {
		result = append(result, makeService(row))
	}

	return result, nil
}

func (r *servicesRepo) UpdateService(ctx context.Context, service entity.Service) error {
	argsKV := map[string]interface{}{
		"id":          service.ID,
		"name":        service.Name,
		"description": service.Description,
		"benefits":    service.Benefits,
		"features":    service.Features,
		"icon":        service.Icon,
		"published":   service.Published,
		"updated_at":  service.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryUpdateService, argsKV)
	if err != nil {
		return err
	}

	query = r.q.Rebind(query)
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"service_id": service.ID,
		}).Error("failed to update service: ", err)
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

func (r *servicesRepo) DeleteService(ctx context.Context, id string) error {
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteService, argsKV)
	if err != nil {
		return err
	}

	query = r.q.Rebind(query)
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"service_id": id,
		}).Error("failed to delete service: ", err)
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
