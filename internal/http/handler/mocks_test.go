package handler_test

import (
	"context"
	"time"

	"careerline.app/studio/internal/listing"
	"careerline.app/studio/internal/model"
	"careerline.app/studio/internal/service"
)

type mockAuthService struct {
	authURLFn  func(state string) (string, error)
	callbackFn func(ctx context.Context, code string) (*model.User, *model.Session, error)
	validateFn func(ctx context.Context, sessionID int64) (*model.User, error)
	logoutFn   func(ctx context.Context, sessionID int64) error
}

func (m *mockAuthService) GetAuthorizationURL(state string) (string, error) {
	if m.authURLFn != nil {
		return m.authURLFn(state)
	}
	return "https://auth.test/authorize?state=" + state, nil
}

func (m *mockAuthService) HandleCallback(ctx context.Context, code string) (*model.User, *model.Session, error) {
	if m.callbackFn != nil {
		return m.callbackFn(ctx, code)
	}
	return nil, nil, nil
}

func (m *mockAuthService) ValidateSession(ctx context.Context, sessionID int64) (*model.User, error) {
	if m.validateFn != nil {
		return m.validateFn(ctx, sessionID)
	}
	return nil, service.ErrSessionExpired
}

func (m *mockAuthService) Logout(ctx context.Context, sessionID int64) error {
	if m.logoutFn != nil {
		return m.logoutFn(ctx, sessionID)
	}
	return nil
}

type mockCompanyService struct {
	createFn    func(ctx context.Context, ownerUserID int64, name string, slug *string) (*model.Company, error)
	listMineFn  func(ctx context.Context, userID int64) ([]model.Company, error)
	authorizeFn func(ctx context.Context, userID, companyID int64) (*model.Company, error)
	liveFn      func(ctx context.Context, userID, companyID int64) (*model.Snapshot, error)
	deleteFn    func(ctx context.Context, userID, companyID int64) error
}

func (m *mockCompanyService) Create(ctx context.Context, ownerUserID int64, name string, slug *string) (*model.Company, error) {
	if m.createFn != nil {
		return m.createFn(ctx, ownerUserID, name, slug)
	}
	return nil, nil
}

func (m *mockCompanyService) ListMine(ctx context.Context, userID int64) ([]model.Company, error) {
	if m.listMineFn != nil {
		return m.listMineFn(ctx, userID)
	}
	return []model.Company{}, nil
}

func (m *mockCompanyService) Authorize(ctx context.Context, userID, companyID int64) (*model.Company, error) {
	if m.authorizeFn != nil {
		return m.authorizeFn(ctx, userID, companyID)
	}
	return nil, nil
}

func (m *mockCompanyService) Live(ctx context.Context, userID, companyID int64) (*model.Snapshot, error) {
	if m.liveFn != nil {
		return m.liveFn(ctx, userID, companyID)
	}
	return nil, nil
}

func (m *mockCompanyService) Delete(ctx context.Context, userID, companyID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, companyID)
	}
	return nil
}

type mockDraftService struct {
	getFn     func(ctx context.Context, userID, companyID int64) (*model.Draft, error)
	saveFn    func(ctx context.Context, userID, companyID int64, snapshot model.Snapshot) (time.Time, error)
	publishFn func(ctx context.Context, userID, companyID int64) (*service.PublishResult, error)
}

func (m *mockDraftService) Get(ctx context.Context, userID, companyID int64) (*model.Draft, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID, companyID)
	}
	return nil, service.ErrDraftNotFound
}

func (m *mockDraftService) Save(ctx context.Context, userID, companyID int64, snapshot model.Snapshot) (time.Time, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, userID, companyID, snapshot)
	}
	return time.Time{}, nil
}

func (m *mockDraftService) Publish(ctx context.Context, userID, companyID int64) (*service.PublishResult, error) {
	if m.publishFn != nil {
		return m.publishFn(ctx, userID, companyID)
	}
	return &service.PublishResult{}, nil
}

type mockCareersService struct {
	pageFn func(ctx context.Context, slug string) (*model.PublicPage, error)
	jobsFn func(ctx context.Context, slug string, filters listing.Filters) (*listing.Result, error)
	jobFn  func(ctx context.Context, companySlug, jobSlug string) (*model.Company, *model.Job, error)
}

func (m *mockCareersService) PublicPage(ctx context.Context, slug string) (*model.PublicPage, error) {
	if m.pageFn != nil {
		return m.pageFn(ctx, slug)
	}
	return nil, service.ErrCompanyNotFound
}

func (m *mockCareersService) Refresh(ctx context.Context, slug string) (*model.PublicPage, error) {
	return m.PublicPage(ctx, slug)
}

func (m *mockCareersService) Jobs(ctx context.Context, slug string, filters listing.Filters) (*listing.Result, error) {
	if m.jobsFn != nil {
		return m.jobsFn(ctx, slug, filters)
	}
	return &listing.Result{}, nil
}

func (m *mockCareersService) Job(ctx context.Context, companySlug, jobSlug string) (*model.Company, *model.Job, error) {
	if m.jobFn != nil {
		return m.jobFn(ctx, companySlug, jobSlug)
	}
	return nil, nil, service.ErrJobNotFound
}

type mockJobService struct {
	listFn   func(ctx context.Context, userID, companyID int64) ([]model.Job, error)
	createFn func(ctx context.Context, userID, companyID int64, in service.JobInput) (*model.Job, error)
	updateFn func(ctx context.Context, userID, jobID int64, in service.JobInput) (*model.Job, error)
	deleteFn func(ctx context.Context, userID, jobID int64) error
}

func (m *mockJobService) List(ctx context.Context, userID, companyID int64) ([]model.Job, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, companyID)
	}
	return []model.Job{}, nil
}

func (m *mockJobService) Create(ctx context.Context, userID, companyID int64, in service.JobInput) (*model.Job, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, companyID, in)
	}
	return &model.Job{}, nil
}

func (m *mockJobService) Update(ctx context.Context, userID, jobID int64, in service.JobInput) (*model.Job, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, userID, jobID, in)
	}
	return &model.Job{}, nil
}

func (m *mockJobService) Delete(ctx context.Context, userID, jobID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, jobID)
	}
	return nil
}

type mockApplicationService struct {
	submitFn func(ctx context.Context, companySlug, jobSlug, name, email string) (*model.Application, error)
	listFn   func(ctx context.Context, userID, companyID int64, status *model.ApplicationStatus) ([]model.Application, error)
	updateFn func(ctx context.Context, userID, applicationID int64, status model.ApplicationStatus) (*model.Application, error)
}

func (m *mockApplicationService) Submit(ctx context.Context, companySlug, jobSlug, name, email string) (*model.Application, error) {
	if m.submitFn != nil {
		return m.submitFn(ctx, companySlug, jobSlug, name, email)
	}
	return &model.Application{}, nil
}

func (m *mockApplicationService) List(ctx context.Context, userID, companyID int64, status *model.ApplicationStatus) ([]model.Application, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, companyID, status)
	}
	return []model.Application{}, nil
}

func (m *mockApplicationService) UpdateStatus(ctx context.Context, userID, applicationID int64, status model.ApplicationStatus) (*model.Application, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, userID, applicationID, status)
	}
	return &model.Application{}, nil
}
