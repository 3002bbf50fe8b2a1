package servicesRepository

import (
	"AutomatrixBackend/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
	Ping(ctx context.Context) error
}

func (r *repository) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Services: &servicesRepo{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Services interface {
		CreateService(ctx context.Context, service entity.Service) error
		GetServiceByID(ctx context.Context, id string) (entity.Service, error)
		GetAllServices(ctx context.Context, publishedOnly bool) ([]entity.Service, error)
		UpdateService(ctx context.Context, service entity.Service) error
		DeleteService(ctx context.Context, id string) error
	}

	Commit   func() error
	Rollback func() error
}

type servicesRepo struct {
	q   SQLExecutor
	log *logrus.Logger
}
