package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"careerline.app/studio/core/db/sqlc"
	"careerline.app/studio/internal/model"
)

type companyStore struct {
	queries *sqlc.Queries
}

func newCompanyStore(queries *sqlc.Queries) CompanyStore {
	return &companyStore{queries: queries}
}

func (s *companyStore) GetByID(ctx context.Context, id int64) (*model.Company, error) {
	row, err := s.queries.GetCompany(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toCompanyModel(row), nil
}

func (s *companyStore) GetBySlug(ctx context.Context, slug string) (*model.Company, error) {
	row, err := s.queries.GetCompanyBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toCompanyModel(row), nil
}

func (s *companyStore) Create(ctx context.Context, company *model.Company) error {
	row, err := s.queries.CreateCompany(ctx, sqlc.CreateCompanyParams{
		ID:          company.ID,
		OwnerUserID: company.OwnerUserID,
		Name:        company.Name,
		Slug:        company.Slug,
		Tagline:     company.Tagline,
		Website:     company.Website,
		LogoUrl:     company.LogoURL,
		BannerUrl:   company.BannerURL,
	})
	if err != nil {
		return err
	}
	*company = *toCompanyModel(row)
	return nil
}

func (s *companyStore) Update(ctx context.Context, company *model.Company) error {
	row, err := s.queries.UpdateCompany(ctx, sqlc.UpdateCompanyParams{
		ID:        company.ID,
		Name:      company.Name,
		Tagline:   company.Tagline,
		Website:   company.Website,
		LogoUrl:   company.LogoURL,
		BannerUrl: company.BannerURL,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*company = *toCompanyModel(row)
	return nil
}

func (s *companyStore) Delete(ctx context.Context, id int64) error {
	return s.queries.DeleteCompany(ctx, id)
}

func (s *companyStore) ListByOwner(ctx context.Context, userID int64) ([]model.Company, error) {
	rows, err := s.queries.ListCompaniesByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	companies := make([]model.Company, len(rows))
	for i, row := range rows {
		companies[i] = *toCompanyModel(row)
	}
	return companies, nil
}

func toCompanyModel(row sqlc.Company) *model.Company {
	return &model.Company{
		ID:          row.ID,
		OwnerUserID: row.OwnerUserID,
		Name:        row.Name,
		Slug:        row.Slug,
		Tagline:     row.Tagline,
		Website:     row.Website,
		LogoURL:     row.LogoUrl,
		BannerURL:   row.BannerUrl,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
