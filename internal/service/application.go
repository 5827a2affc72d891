package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"careerline.app/studio/common/id"
	"careerline.app/studio/common/logger"
	"careerline.app/studio/internal/model"
	"careerline.app/studio/internal/queue"
	"careerline.app/studio/internal/store"
)

type ApplicationService interface {
	Submit(ctx context.Context, companySlug, jobSlug, name, email string) (*model.Application, error)
	List(ctx context.Context, userID, companyID int64, status *model.ApplicationStatus) ([]model.Application, error)
	// UpdateStatus allows any status to move to any other status.
	UpdateStatus(ctx context.Context, userID, applicationID int64, status model.ApplicationStatus) (*model.Application, error)
}

type applicationService struct {
	companies    store.CompanyStore
	jobs         store.JobStore
	applications store.ApplicationStore
	producer     queue.Producer
}

func NewApplicationService(
	companies store.CompanyStore,
	jobs store.JobStore,
	applications store.ApplicationStore,
	producer queue.Producer,
) ApplicationService {
	return &applicationService{
		companies:    companies,
		jobs:         jobs,
		applications: applications,
		producer:     producer,
	}
}

func (s *applicationService) Submit(ctx context.Context, companySlug, jobSlug, name, email string) (*model.Application, error) {
	company, err := s.companies.GetBySlug(ctx, companySlug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("getting company: %w", err)
	}

	job, err := s.jobs.GetBySlug(ctx, company.ID, jobSlug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("getting job: %w", err)
	}
	if !job.IsActive {
		return nil, ErrJobClosed
	}

	app := &model.Application{
		ID:        id.New(),
		CompanyID: company.ID,
		JobID:     job.ID,
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Status:    model.ApplicationStatusPending,
	}
	if err := s.applications.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("creating application: %w", err)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		CompanyID:     &company.ID,
		JobID:         &job.ID,
		ApplicationID: &app.ID,
	})

	traceID := logger.TraceID(ctx)
	if err := s.producer.Enqueue(ctx, queue.EventMessage{
		EventType:     queue.EventApplicationSubmitted,
		CompanyID:     company.ID,
		ApplicationID: &app.ID,
		TraceID:       &traceID,
	}); err != nil {
		slog.WarnContext(ctx, "failed to enqueue application event", "error", err)
	}

	slog.InfoContext(ctx, "application submitted")
	return app, nil
}

func (s *applicationService) List(ctx context.Context, userID, companyID int64, status *model.ApplicationStatus) ([]model.Application, error) {
	if _, err := ownedCompany(ctx, s.companies, userID, companyID); err != nil {
		return nil, err
	}
	if status != nil && !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	apps, err := s.applications.ListByCompany(ctx, companyID, status)
	if err != nil {
		return nil, fmt.Errorf("listing applications: %w", err)
	}
	return apps, nil
}

func (s *applicationService) UpdateStatus(ctx context.Context, userID, applicationID int64, status model.ApplicationStatus) (*model.Application, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	app, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("getting application: %w", err)
	}

	if _, err := ownedCompany(ctx, s.companies, userID, app.CompanyID); err != nil {
		return nil, err
	}

	updated, err := s.applications.UpdateStatus(ctx, applicationID, status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("updating application status: %w", err)
	}

	slog.InfoContext(ctx, "application status changed",
		"application_id", applicationID,
		"from", app.Status,
		"to", status)
	return updated, nil
}
