package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"careerline.app/studio/core/db/sqlc"
	"careerline.app/studio/internal/model"
)

type settingsStore struct {
	queries *sqlc.Queries
}

func newSettingsStore(queries *sqlc.Queries) SettingsStore {
	return &settingsStore{queries: queries}
}

func (s *settingsStore) Get(ctx context.Context, companyID int64) (*model.CompanySettings, error) {
	row, err := s.queries.GetCompanySettings(ctx, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toSettingsModel(row), nil
}

func (s *settingsStore) Upsert(ctx context.Context, settings *model.CompanySettings) error {
	row, err := s.queries.UpsertCompanySettings(ctx, sqlc.UpsertCompanySettingsParams{
		CompanyID:       settings.CompanyID,
		PrimaryColor:    settings.PrimaryColor,
		SecondaryColor:  settings.SecondaryColor,
		AccentColor:     settings.AccentColor,
		DarkMode:        settings.DarkMode,
		CultureVideoUrl: settings.CultureVideoURL,
	})
	if err != nil {
		return err
	}
	*settings = *toSettingsModel(row)
	return nil
}

func toSettingsModel(row sqlc.CompanySetting) *model.CompanySettings {
	return &model.CompanySettings{
		CompanyID:       row.CompanyID,
		PrimaryColor:    row.PrimaryColor,
		SecondaryColor:  row.SecondaryColor,
		AccentColor:     row.AccentColor,
		DarkMode:        row.DarkMode,
		CultureVideoURL: row.CultureVideoUrl,
	}
}
