package store

import (
	"context"
	"errors"
	"time"

	"careerline.app/studio/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// UserStore defines the contract for user data access
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	UpsertByWorkOSID(ctx context.Context, user *model.User) error
}

// SessionStore defines the contract for session data access
type SessionStore interface {
	GetValid(ctx context.Context, id int64) (*model.Session, error) // checks expiry
	Create(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id int64) error
	DeleteExpired(ctx context.Context) error
}

// CompanyStore defines the contract for live company records
type CompanyStore interface {
	GetByID(ctx context.Context, id int64) (*model.Company, error)
	GetBySlug(ctx context.Context, slug string) (*model.Company, error)
	Create(ctx context.Context, company *model.Company) error
	// Update writes the branding fields. Slug and owner are not touched.
	Update(ctx context.Context, company *model.Company) error
	Delete(ctx context.Context, id int64) error
	ListByOwner(ctx context.Context, userID int64) ([]model.Company, error)
}

// SettingsStore defines the contract for live theme settings
type SettingsStore interface {
	Get(ctx context.Context, companyID int64) (*model.CompanySettings, error)
	Upsert(ctx context.Context, settings *model.CompanySettings) error
}

// SectionStore defines the contract for live content sections
type SectionStore interface {
	ListByCompany(ctx context.Context, companyID int64) ([]model.ContentSection, error)
	// Replace swaps the full section list of a company. DisplayOrder is taken from position.
	Replace(ctx context.Context, companyID int64, sections []model.ContentSection) error
}

// DraftStore defines the contract for the per-company draft record
type DraftStore interface {
	Get(ctx context.Context, companyID int64) (*model.Draft, error)
	// Upsert overwrites the draft unconditionally and returns the stored updated_at.
	Upsert(ctx context.Context, companyID int64, snapshot model.Snapshot) (time.Time, error)
	MarkPublished(ctx context.Context, companyID int64) (time.Time, error)
}

// JobStore defines the contract for job postings
type JobStore interface {
	GetByID(ctx context.Context, id int64) (*model.Job, error)
	GetBySlug(ctx context.Context, companyID int64, slug string) (*model.Job, error)
	ListByCompany(ctx context.Context, companyID int64) ([]model.Job, error)
	ListActiveByCompany(ctx context.Context, companyID int64) ([]model.Job, error)
	Create(ctx context.Context, job *model.Job) error
	Update(ctx context.Context, job *model.Job) error
	Delete(ctx context.Context, id int64) error
}

// ApplicationStore defines the contract for candidate applications
type ApplicationStore interface {
	Create(ctx context.Context, app *model.Application) error
	GetByID(ctx context.Context, id int64) (*model.Application, error)
	ListByCompany(ctx context.Context, companyID int64, status *model.ApplicationStatus) ([]model.Application, error)
	UpdateStatus(ctx context.Context, id int64, status model.ApplicationStatus) (*model.Application, error)
}
