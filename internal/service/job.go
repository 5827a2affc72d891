package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"careerline.app/studio/common"
	"careerline.app/studio/common/id"
	"careerline.app/studio/internal/model"
	"careerline.app/studio/internal/store"
)

type JobInput struct {
	Title           string
	Location        string
	Department      string
	EmploymentType  model.EmploymentType
	ExperienceLevel model.ExperienceLevel
	WorkPolicy      model.WorkPolicy
	SalaryMin       *int32
	SalaryMax       *int32
	SalaryCurrency  string
	Description     string
	IsActive        bool
}

func (in JobInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidJob)
	}
	if !in.EmploymentType.IsValid() {
		return fmt.Errorf("%w: unknown employment type %q", ErrInvalidJob, in.EmploymentType)
	}
	if !in.ExperienceLevel.IsValid() {
		return fmt.Errorf("%w: unknown experience level %q", ErrInvalidJob, in.ExperienceLevel)
	}
	if !in.WorkPolicy.IsValid() {
		return fmt.Errorf("%w: unknown work policy %q", ErrInvalidJob, in.WorkPolicy)
	}
	if in.SalaryMin != nil && in.SalaryMax != nil && *in.SalaryMin > *in.SalaryMax {
		return fmt.Errorf("%w: salary_min exceeds salary_max", ErrInvalidJob)
	}
	return nil
}

// JobService manages postings. Job changes are live immediately; they do not
// go through the draft.
type JobService interface {
	List(ctx context.Context, userID, companyID int64) ([]model.Job, error)
	Create(ctx context.Context, userID, companyID int64, in JobInput) (*model.Job, error)
	// Update keeps the slug assigned at creation so shared links stay valid.
	Update(ctx context.Context, userID, jobID int64, in JobInput) (*model.Job, error)
	Delete(ctx context.Context, userID, jobID int64) error
}

type jobService struct {
	companies store.CompanyStore
	jobs      store.JobStore
	cache     PageCache
}

func NewJobService(companies store.CompanyStore, jobs store.JobStore, cache PageCache) JobService {
	return &jobService{
		companies: companies,
		jobs:      jobs,
		cache:     cache,
	}
}

func (s *jobService) List(ctx context.Context, userID, companyID int64) ([]model.Job, error) {
	if _, err := ownedCompany(ctx, s.companies, userID, companyID); err != nil {
		return nil, err
	}

	jobs, err := s.jobs.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}
	return jobs, nil
}

func (s *jobService) Create(ctx context.Context, userID, companyID int64, in JobInput) (*model.Job, error) {
	company, err := ownedCompany(ctx, s.companies, userID, companyID)
	if err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	slug, err := s.ensureJobSlug(ctx, companyID, in.Title)
	if err != nil {
		return nil, err
	}

	job := &model.Job{
		ID:        id.New(),
		CompanyID: companyID,
		Slug:      slug,
	}
	applyJobInput(job, in)

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("creating job: %w", err)
	}

	s.invalidate(ctx, company.Slug)
	slog.InfoContext(ctx, "job created", "job_id", job.ID, "company_id", companyID, "slug", job.Slug)
	return job, nil
}

func (s *jobService) Update(ctx context.Context, userID, jobID int64, in JobInput) (*model.Job, error) {
	job, company, err := s.ownedJob(ctx, userID, jobID)
	if err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	applyJobInput(job, in)
	if err := s.jobs.Update(ctx, job); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("updating job: %w", err)
	}

	s.invalidate(ctx, company.Slug)
	return job, nil
}

func (s *jobService) Delete(ctx context.Context, userID, jobID int64) error {
	_, company, err := s.ownedJob(ctx, userID, jobID)
	if err != nil {
		return err
	}

	if err := s.jobs.Delete(ctx, jobID); err != nil {
		return fmt.Errorf("deleting job: %w", err)
	}

	s.invalidate(ctx, company.Slug)
	slog.InfoContext(ctx, "job deleted", "job_id", jobID, "company_id", company.ID)
	return nil
}

func (s *jobService) ownedJob(ctx context.Context, userID, jobID int64) (*model.Job, *model.Company, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrJobNotFound
		}
		return nil, nil, fmt.Errorf("getting job: %w", err)
	}

	company, err := ownedCompany(ctx, s.companies, userID, job.CompanyID)
	if err != nil {
		return nil, nil, err
	}
	return job, company, nil
}

func (s *jobService) ensureJobSlug(ctx context.Context, companyID int64, title string) (string, error) {
	base, err := common.Slugify(title, "job")
	if err != nil {
		return "", fmt.Errorf("generating slug: %w", err)
	}

	return firstFreeSlug(base, func(candidate string) (bool, error) {
		_, err := s.jobs.GetBySlug(ctx, companyID, candidate)
		if errors.Is(err, store.ErrNotFound) {
			return true, nil
		}
		return false, err
	})
}

func (s *jobService) invalidate(ctx context.Context, slug string) {
	if err := s.cache.Invalidate(ctx, slug); err != nil {
		slog.WarnContext(ctx, "failed to invalidate page cache", "error", err, "slug", slug)
	}
}

func applyJobInput(job *model.Job, in JobInput) {
	job.Title = strings.TrimSpace(in.Title)
	job.Location = strings.TrimSpace(in.Location)
	job.Department = strings.TrimSpace(in.Department)
	job.EmploymentType = in.EmploymentType
	job.ExperienceLevel = in.ExperienceLevel
	job.WorkPolicy = in.WorkPolicy
	job.SalaryMin = in.SalaryMin
	job.SalaryMax = in.SalaryMax
	job.SalaryCurrency = in.SalaryCurrency
	if job.SalaryCurrency == "" {
		job.SalaryCurrency = "USD"
	}
	job.Description = in.Description
	job.IsActive = in.IsActive
}
