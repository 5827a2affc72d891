package service

import (
	"context"
	"errors"
	"fmt"

	"careerline.app/studio/internal/model"
	"careerline.app/studio/internal/store"
)

// ownedCompany loads a company and checks that userID owns it.
func ownedCompany(ctx context.Context, companies store.CompanyStore, userID, companyID int64) (*model.Company, error) {
	company, err := companies.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("getting company: %w", err)
	}
	if company.OwnerUserID != userID {
		return nil, ErrForbidden
	}
	return company, nil
}

// liveSnapshot reads the live settings and sections of company. Missing
// settings fall back to the default theme.
func liveSnapshot(ctx context.Context, settings store.SettingsStore, sections store.SectionStore, company *model.Company) (*model.Snapshot, error) {
	s, err := settings.Get(ctx, company.ID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("getting settings: %w", err)
		}
		defaults := model.DefaultSettings(company.ID)
		s = &defaults
	}

	list, err := sections.ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, fmt.Errorf("listing sections: %w", err)
	}

	return &model.Snapshot{
		Company:  *company,
		Settings: *s,
		Sections: list,
	}, nil
}
