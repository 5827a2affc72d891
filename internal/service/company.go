package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"careerline.app/studio/common"
	"careerline.app/studio/common/id"
	"careerline.app/studio/internal/content"
	"careerline.app/studio/internal/model"
	"careerline.app/studio/internal/store"
)

type CompanyService interface {
	Create(ctx context.Context, ownerUserID int64, name string, slug *string) (*model.Company, error)
	ListMine(ctx context.Context, userID int64) ([]model.Company, error)
	Authorize(ctx context.Context, userID, companyID int64) (*model.Company, error)
	// Live returns the published snapshot of an owned company, hidden sections included.
	Live(ctx context.Context, userID, companyID int64) (*model.Snapshot, error)
	Delete(ctx context.Context, userID, companyID int64) error
}

type companyService struct {
	companies store.CompanyStore
	settings  store.SettingsStore
	sections  store.SectionStore
	txRunner  TxRunner
	cache     PageCache
}

func NewCompanyService(
	companies store.CompanyStore,
	settings store.SettingsStore,
	sections store.SectionStore,
	txRunner TxRunner,
	cache PageCache,
) CompanyService {
	return &companyService{
		companies: companies,
		settings:  settings,
		sections:  sections,
		txRunner:  txRunner,
		cache:     cache,
	}
}

func (s *companyService) Create(ctx context.Context, ownerUserID int64, name string, slug *string) (*model.Company, error) {
	var company *model.Company

	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		finalSlug, err := ensureCompanySlug(ctx, sp.Companies(), name, slug)
		if err != nil {
			return err
		}

		company = &model.Company{
			ID:          id.New(),
			OwnerUserID: ownerUserID,
			Name:        name,
			Slug:        finalSlug,
		}
		if err := sp.Companies().Create(ctx, company); err != nil {
			return fmt.Errorf("creating company: %w", err)
		}

		settings := model.DefaultSettings(company.ID)
		if err := sp.Settings().Upsert(ctx, &settings); err != nil {
			return fmt.Errorf("creating settings: %w", err)
		}

		about := model.ContentSection{
			ID:        id.NewString(),
			Title:     content.DefaultTitle(model.SectionTypeAbout),
			Type:      model.SectionTypeAbout,
			Content:   content.DefaultTemplate(model.SectionTypeAbout),
			IsVisible: true,
		}
		if err := sp.Sections().Replace(ctx, company.ID, []model.ContentSection{about}); err != nil {
			return fmt.Errorf("creating sections: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "company created",
		"company_id", company.ID,
		"slug", company.Slug,
		"owner_user_id", ownerUserID)
	return company, nil
}

func (s *companyService) ListMine(ctx context.Context, userID int64) ([]model.Company, error) {
	companies, err := s.companies.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing companies: %w", err)
	}
	return companies, nil
}

func (s *companyService) Authorize(ctx context.Context, userID, companyID int64) (*model.Company, error) {
	return ownedCompany(ctx, s.companies, userID, companyID)
}

func (s *companyService) Live(ctx context.Context, userID, companyID int64) (*model.Snapshot, error) {
	company, err := ownedCompany(ctx, s.companies, userID, companyID)
	if err != nil {
		return nil, err
	}
	return liveSnapshot(ctx, s.settings, s.sections, company)
}

func (s *companyService) Delete(ctx context.Context, userID, companyID int64) error {
	company, err := ownedCompany(ctx, s.companies, userID, companyID)
	if err != nil {
		return err
	}

	if err := s.companies.Delete(ctx, companyID); err != nil {
		return fmt.Errorf("deleting company: %w", err)
	}

	if err := s.cache.Invalidate(ctx, company.Slug); err != nil {
		slog.WarnContext(ctx, "failed to invalidate page cache", "error", err, "slug", company.Slug)
	}

	slog.InfoContext(ctx, "company deleted", "company_id", companyID, "slug", company.Slug)
	return nil
}

func ensureCompanySlug(ctx context.Context, companies store.CompanyStore, name string, slug *string) (string, error) {
	input := name
	if slug != nil && *slug != "" {
		input = *slug
	}

	base, err := common.Slugify(input, "company")
	if err != nil {
		return "", fmt.Errorf("generating slug: %w", err)
	}

	return firstFreeSlug(base, func(candidate string) (bool, error) {
		_, err := companies.GetBySlug(ctx, candidate)
		if errors.Is(err, store.ErrNotFound) {
			return true, nil
		}
		return false, err
	})
}

// firstFreeSlug tries base, then base-1 through base-20.
func firstFreeSlug(base string, free func(candidate string) (bool, error)) (string, error) {
	ok, err := free(base)
	if err != nil {
		return "", fmt.Errorf("checking slug availability: %w", err)
	}
	if ok {
		return base, nil
	}

	for i := 1; i <= 20; i++ {
		candidate := common.WithSuffix(base, i)
		ok, err := free(candidate)
		if err != nil {
			return "", fmt.Errorf("checking slug availability: %w", err)
		}
		if ok {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("unable to find available slug for %q", base)
}
