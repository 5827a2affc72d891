package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"careerline.app/studio/core/db/sqlc"
	"careerline.app/studio/internal/model"
)

type draftStore struct {
	queries *sqlc.Queries
}

func newDraftStore(queries *sqlc.Queries) DraftStore {
	return &draftStore{queries: queries}
}

func (s *draftStore) Get(ctx context.Context, companyID int64) (*model.Draft, error) {
	row, err := s.queries.GetCompanyDraft(ctx, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toDraftModel(row)
}

func (s *draftStore) Upsert(ctx context.Context, companyID int64, snapshot model.Snapshot) (time.Time, error) {
	params, err := toDraftParams(companyID, snapshot)
	if err != nil {
		return time.Time{}, err
	}

	updatedAt, err := s.queries.UpsertCompanyDraft(ctx, params)
	if err != nil {
		return time.Time{}, err
	}
	return updatedAt.Time, nil
}

func (s *draftStore) MarkPublished(ctx context.Context, companyID int64) (time.Time, error) {
	publishedAt, err := s.queries.MarkCompanyDraftPublished(ctx, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, ErrNotFound
		}
		return time.Time{}, err
	}
	return publishedAt.Time, nil
}

func toDraftParams(companyID int64, snapshot model.Snapshot) (sqlc.UpsertCompanyDraftParams, error) {
	sections := snapshot.Sections
	if sections == nil {
		sections = []model.ContentSection{}
	}

	company, err := json.Marshal(snapshot.Company)
	if err != nil {
		return sqlc.UpsertCompanyDraftParams{}, fmt.Errorf("encoding draft company: %w", err)
	}
	settings, err := json.Marshal(snapshot.Settings)
	if err != nil {
		return sqlc.UpsertCompanyDraftParams{}, fmt.Errorf("encoding draft settings: %w", err)
	}
	encodedSections, err := json.Marshal(sections)
	if err != nil {
		return sqlc.UpsertCompanyDraftParams{}, fmt.Errorf("encoding draft sections: %w", err)
	}

	return sqlc.UpsertCompanyDraftParams{
		CompanyID: companyID,
		Company:   company,
		Settings:  settings,
		Sections:  encodedSections,
	}, nil
}

func toDraftModel(row sqlc.CompanyDraft) (*model.Draft, error) {
	draft := &model.Draft{
		CompanyID: row.CompanyID,
		UpdatedAt: row.UpdatedAt.Time,
	}
	if row.LastPublishedAt.Valid {
		t := row.LastPublishedAt.Time
		draft.LastPublishedAt = &t
	}

	if err := json.Unmarshal(row.Company, &draft.Company); err != nil {
		return nil, fmt.Errorf("decoding draft company: %w", err)
	}
	if err := json.Unmarshal(row.Settings, &draft.Settings); err != nil {
		return nil, fmt.Errorf("decoding draft settings: %w", err)
	}
	if err := json.Unmarshal(row.Sections, &draft.Sections); err != nil {
		return nil, fmt.Errorf("decoding draft sections: %w", err)
	}
	if draft.Sections == nil {
		draft.Sections = []model.ContentSection{}
	}
	return draft, nil
}
