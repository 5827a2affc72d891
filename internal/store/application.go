package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"careerline.app/studio/core/db/sqlc"
	"careerline.app/studio/internal/model"
)

type applicationStore struct {
	queries *sqlc.Queries
}

func newApplicationStore(queries *sqlc.Queries) ApplicationStore {
	return &applicationStore{queries: queries}
}

func (s *applicationStore) Create(ctx context.Context, app *model.Application) error {
	row, err := s.queries.CreateApplication(ctx, sqlc.CreateApplicationParams{
		ID:        app.ID,
		CompanyID: app.CompanyID,
		JobID:     app.JobID,
		Name:      app.Name,
		Email:     app.Email,
		Status:    string(app.Status),
	})
	if err != nil {
		return err
	}
	*app = *toApplicationModel(row)
	return nil
}

func (s *applicationStore) GetByID(ctx context.Context, id int64) (*model.Application, error) {
	row, err := s.queries.GetApplication(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toApplicationModel(row), nil
}

func (s *applicationStore) ListByCompany(ctx context.Context, companyID int64, status *model.ApplicationStatus) ([]model.Application, error) {
	var statusFilter *string
	if status != nil {
		v := string(*status)
		statusFilter = &v
	}

	rows, err := s.queries.ListApplicationsByCompany(ctx, sqlc.ListApplicationsByCompanyParams{
		CompanyID: companyID,
		Status:    statusFilter,
	})
	if err != nil {
		return nil, err
	}

	apps := make([]model.Application, len(rows))
	for i, row := range rows {
		apps[i] = *toApplicationModel(row)
	}
	return apps, nil
}

func (s *applicationStore) UpdateStatus(ctx context.Context, id int64, status model.ApplicationStatus) (*model.Application, error) {
	row, err := s.queries.UpdateApplicationStatus(ctx, sqlc.UpdateApplicationStatusParams{
		ID:     id,
		Status: string(status),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toApplicationModel(row), nil
}

func toApplicationModel(row sqlc.Application) *model.Application {
	return &model.Application{
		ID:        row.ID,
		CompanyID: row.CompanyID,
		JobID:     row.JobID,
		Name:      row.Name,
		Email:     row.Email,
		Status:    model.ApplicationStatus(row.Status),
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}
