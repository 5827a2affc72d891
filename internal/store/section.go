package store

import (
	"context"
	"fmt"

	"careerline.app/studio/core/db/sqlc"
	"careerline.app/studio/internal/model"
)

type sectionStore struct {
	queries *sqlc.Queries
}

func newSectionStore(queries *sqlc.Queries) SectionStore {
	return &sectionStore{queries: queries}
}

func (s *sectionStore) ListByCompany(ctx context.Context, companyID int64) ([]model.ContentSection, error) {
	rows, err := s.queries.ListContentSections(ctx, companyID)
	if err != nil {
		return nil, err
	}

	sections := make([]model.ContentSection, len(rows))
	for i, row := range rows {
		sections[i] = toSectionModel(row)
	}
	return sections, nil
}

// Replace must run inside a transaction to be atomic; callers use the TxRunner.
func (s *sectionStore) Replace(ctx context.Context, companyID int64, sections []model.ContentSection) error {
	if err := s.queries.DeleteContentSections(ctx, companyID); err != nil {
		return fmt.Errorf("clearing sections: %w", err)
	}

	for i, section := range sections {
		err := s.queries.InsertContentSection(ctx, sqlc.InsertContentSectionParams{
			CompanyID:    companyID,
			ID:           section.ID,
			Title:        section.Title,
			SectionType:  string(section.Type),
			Content:      section.Content,
			IsVisible:    section.IsVisible,
			DisplayOrder: int32(i),
		})
		if err != nil {
			return fmt.Errorf("inserting section %s: %w", section.ID, err)
		}
	}
	return nil
}

func toSectionModel(row sqlc.ContentSection) model.ContentSection {
	return model.ContentSection{
		ID:           row.ID,
		Title:        row.Title,
		Type:         model.SectionType(row.SectionType),
		Content:      row.Content,
		IsVisible:    row.IsVisible,
		DisplayOrder: int(row.DisplayOrder),
	}
}
