package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"careerline.app/studio/common/logger"
	"careerline.app/studio/internal/model"
	"careerline.app/studio/internal/queue"
	"careerline.app/studio/internal/store"
)

type PublishResult struct {
	PublishedAt time.Time
	URL         string
}

// DraftService owns the draft record and the copy from draft to live.
// Saves are last-write-wins; there is no version check between editors.
type DraftService interface {
	Get(ctx context.Context, userID, companyID int64) (*model.Draft, error)
	Save(ctx context.Context, userID, companyID int64, snapshot model.Snapshot) (time.Time, error)
	Publish(ctx context.Context, userID, companyID int64) (*PublishResult, error)
}

type draftService struct {
	companies store.CompanyStore
	drafts    store.DraftStore
	txRunner  TxRunner
	cache     PageCache
	producer  queue.Producer
	siteURL   string
}

func NewDraftService(
	companies store.CompanyStore,
	drafts store.DraftStore,
	txRunner TxRunner,
	cache PageCache,
	producer queue.Producer,
	siteURL string,
) DraftService {
	return &draftService{
		companies: companies,
		drafts:    drafts,
		txRunner:  txRunner,
		cache:     cache,
		producer:  producer,
		siteURL:   siteURL,
	}
}

func (s *draftService) Get(ctx context.Context, userID, companyID int64) (*model.Draft, error) {
	if _, err := ownedCompany(ctx, s.companies, userID, companyID); err != nil {
		return nil, err
	}

	draft, err := s.drafts.Get(ctx, companyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("getting draft: %w", err)
	}
	return draft, nil
}

func (s *draftService) Save(ctx context.Context, userID, companyID int64, snapshot model.Snapshot) (time.Time, error) {
	live, err := ownedCompany(ctx, s.companies, userID, companyID)
	if err != nil {
		return time.Time{}, err
	}

	normalized, err := normalizeSnapshot(live, snapshot)
	if err != nil {
		return time.Time{}, err
	}

	updatedAt, err := s.drafts.Upsert(ctx, companyID, normalized)
	if err != nil {
		return time.Time{}, fmt.Errorf("saving draft: %w", err)
	}

	slog.DebugContext(ctx, "draft saved",
		"company_id", companyID,
		"sections", len(normalized.Sections))
	return updatedAt, nil
}

func (s *draftService) Publish(ctx context.Context, userID, companyID int64) (*PublishResult, error) {
	live, err := ownedCompany(ctx, s.companies, userID, companyID)
	if err != nil {
		return nil, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{CompanyID: &companyID})

	var publishedAt time.Time
	err = s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		draft, err := sp.Drafts().Get(ctx, companyID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrDraftNotFound
			}
			return fmt.Errorf("getting draft: %w", err)
		}

		snapshot, err := normalizeSnapshot(live, draft.Snapshot)
		if err != nil {
			return err
		}

		company := snapshot.Company
		if err := sp.Companies().Update(ctx, &company); err != nil {
			return fmt.Errorf("publishing company: %w", err)
		}
		settings := snapshot.Settings
		if err := sp.Settings().Upsert(ctx, &settings); err != nil {
			return fmt.Errorf("publishing settings: %w", err)
		}
		if err := sp.Sections().Replace(ctx, companyID, snapshot.Sections); err != nil {
			return fmt.Errorf("publishing sections: %w", err)
		}

		publishedAt, err = sp.Drafts().MarkPublished(ctx, companyID)
		if err != nil {
			return fmt.Errorf("stamping publish time: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx, live.Slug); err != nil {
		slog.WarnContext(ctx, "failed to invalidate page cache", "error", err, "slug", live.Slug)
	}

	traceID := logger.TraceID(ctx)
	if err := s.producer.Enqueue(ctx, queue.EventMessage{
		EventType: queue.EventPagePublished,
		CompanyID: companyID,
		TraceID:   &traceID,
	}); err != nil {
		slog.WarnContext(ctx, "failed to enqueue publish event", "error", err)
	}

	slog.InfoContext(ctx, "careers page published", "slug", live.Slug, "published_at", publishedAt)

	return &PublishResult{
		PublishedAt: publishedAt,
		URL:         CareersURL(s.siteURL, live.Slug),
	}, nil
}

// CareersURL is the public address of a company's careers page.
func CareersURL(siteURL, slug string) string {
	return fmt.Sprintf("%s/%s/careers", siteURL, slug)
}

// normalizeSnapshot pins identity fields to the live company and checks sections.
// The slug is not editable through drafts.
func normalizeSnapshot(live *model.Company, snapshot model.Snapshot) (model.Snapshot, error) {
	company := snapshot.Company
	company.ID = live.ID
	company.OwnerUserID = live.OwnerUserID
	company.Slug = live.Slug
	company.CreatedAt = live.CreatedAt
	company.UpdatedAt = live.UpdatedAt

	settings := snapshot.Settings
	settings.CompanyID = live.ID

	sections := make([]model.ContentSection, len(snapshot.Sections))
	seen := make(map[string]bool, len(snapshot.Sections))
	for i, section := range snapshot.Sections {
		if section.ID == "" {
			return model.Snapshot{}, fmt.Errorf("%w: section %d has no id", ErrInvalidSection, i)
		}
		if seen[section.ID] {
			return model.Snapshot{}, fmt.Errorf("%w: duplicate id %s", ErrInvalidSection, section.ID)
		}
		if !section.Type.IsValid() {
			return model.Snapshot{}, fmt.Errorf("%w: unknown type %q", ErrInvalidSection, section.Type)
		}
		seen[section.ID] = true
		section.DisplayOrder = i
		sections[i] = section
	}

	return model.Snapshot{
		Company:  company,
		Settings: settings,
		Sections: sections,
	}, nil
}
