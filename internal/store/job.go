package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"careerline.app/studio/core/db/sqlc"
	"careerline.app/studio/internal/model"
)

type jobStore struct {
	queries *sqlc.Queries
}

func newJobStore(queries *sqlc.Queries) JobStore {
	return &jobStore{queries: queries}
}

func (s *jobStore) GetByID(ctx context.Context, id int64) (*model.Job, error) {
	row, err := s.queries.GetJob(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toJobModel(row), nil
}

func (s *jobStore) GetBySlug(ctx context.Context, companyID int64, slug string) (*model.Job, error) {
	row, err := s.queries.GetJobBySlug(ctx, sqlc.GetJobBySlugParams{
		CompanyID: companyID,
		Slug:      slug,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toJobModel(row), nil
}

func (s *jobStore) ListByCompany(ctx context.Context, companyID int64) ([]model.Job, error) {
	rows, err := s.queries.ListJobsByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return toJobModels(rows), nil
}

func (s *jobStore) ListActiveByCompany(ctx context.Context, companyID int64) ([]model.Job, error) {
	rows, err := s.queries.ListActiveJobsByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return toJobModels(rows), nil
}

func (s *jobStore) Create(ctx context.Context, job *model.Job) error {
	row, err := s.queries.CreateJob(ctx, sqlc.CreateJobParams{
		ID:              job.ID,
		CompanyID:       job.CompanyID,
		Title:           job.Title,
		Slug:            job.Slug,
		Location:        job.Location,
		Department:      job.Department,
		EmploymentType:  string(job.EmploymentType),
		ExperienceLevel: string(job.ExperienceLevel),
		WorkPolicy:      string(job.WorkPolicy),
		SalaryMin:       job.SalaryMin,
		SalaryMax:       job.SalaryMax,
		SalaryCurrency:  job.SalaryCurrency,
		Description:     job.Description,
		IsActive:        job.IsActive,
	})
	if err != nil {
		return err
	}
	*job = *toJobModel(row)
	return nil
}

func (s *jobStore) Update(ctx context.Context, job *model.Job) error {
	row, err := s.queries.UpdateJob(ctx, sqlc.UpdateJobParams{
		ID:              job.ID,
		Title:           job.Title,
		Slug:            job.Slug,
		Location:        job.Location,
		Department:      job.Department,
		EmploymentType:  string(job.EmploymentType),
		ExperienceLevel: string(job.ExperienceLevel),
		WorkPolicy:      string(job.WorkPolicy),
		SalaryMin:       job.SalaryMin,
		SalaryMax:       job.SalaryMax,
		SalaryCurrency:  job.SalaryCurrency,
		Description:     job.Description,
		IsActive:        job.IsActive,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*job = *toJobModel(row)
	return nil
}

func (s *jobStore) Delete(ctx context.Context, id int64) error {
	return s.queries.DeleteJob(ctx, id)
}

func toJobModels(rows []sqlc.Job) []model.Job {
	jobs := make([]model.Job, len(rows))
	for i, row := range rows {
		jobs[i] = *toJobModel(row)
	}
	return jobs
}

func toJobModel(row sqlc.Job) *model.Job {
	return &model.Job{
		ID:              row.ID,
		CompanyID:       row.CompanyID,
		Title:           row.Title,
		Slug:            row.Slug,
		Location:        row.Location,
		Department:      row.Department,
		EmploymentType:  model.EmploymentType(row.EmploymentType),
		ExperienceLevel: model.ExperienceLevel(row.ExperienceLevel),
		WorkPolicy:      model.WorkPolicy(row.WorkPolicy),
		SalaryMin:       row.SalaryMin,
		SalaryMax:       row.SalaryMax,
		SalaryCurrency:  row.SalaryCurrency,
		Description:     row.Description,
		IsActive:        row.IsActive,
		CreatedAt:       row.CreatedAt.Time,
		UpdatedAt:       row.UpdatedAt.Time,
	}
}
