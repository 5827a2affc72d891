package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"careerline.app/studio/internal/content"
	"careerline.app/studio/internal/listing"
	"careerline.app/studio/internal/model"
	"careerline.app/studio/internal/store"
)

// PageCache holds rendered public pages keyed by company slug.
type PageCache interface {
	Get(ctx context.Context, slug string) (*model.PublicPage, bool, error)
	Set(ctx context.Context, slug string, page *model.PublicPage) error
	Invalidate(ctx context.Context, slug string) error
}

// CareersService is the public read path. It only ever reads live records.
type CareersService interface {
	PublicPage(ctx context.Context, slug string) (*model.PublicPage, error)
	// Refresh rebuilds the page from the database and stores it in the cache.
	Refresh(ctx context.Context, slug string) (*model.PublicPage, error)
	Jobs(ctx context.Context, slug string, filters listing.Filters) (*listing.Result, error)
	Job(ctx context.Context, companySlug, jobSlug string) (*model.Company, *model.Job, error)
}

type careersService struct {
	companies store.CompanyStore
	settings  store.SettingsStore
	sections  store.SectionStore
	jobs      store.JobStore
	cache     PageCache
}

func NewCareersService(
	companies store.CompanyStore,
	settings store.SettingsStore,
	sections store.SectionStore,
	jobs store.JobStore,
	cache PageCache,
) CareersService {
	return &careersService{
		companies: companies,
		settings:  settings,
		sections:  sections,
		jobs:      jobs,
		cache:     cache,
	}
}

func (s *careersService) PublicPage(ctx context.Context, slug string) (*model.PublicPage, error) {
	page, ok, err := s.cache.Get(ctx, slug)
	if err != nil {
		slog.WarnContext(ctx, "page cache read failed", "error", err, "slug", slug)
	}
	if ok {
		return page, nil
	}
	return s.Refresh(ctx, slug)
}

func (s *careersService) Refresh(ctx context.Context, slug string) (*model.PublicPage, error) {
	page, err := s.build(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, slug, page); err != nil {
		slog.WarnContext(ctx, "page cache write failed", "error", err, "slug", slug)
	}
	return page, nil
}

func (s *careersService) build(ctx context.Context, slug string) (*model.PublicPage, error) {
	company, err := s.companies.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("getting company: %w", err)
	}

	var (
		snapshot *model.Snapshot
		jobs     []model.Job
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snapshot, err = liveSnapshot(gctx, s.settings, s.sections, company)
		return err
	})
	g.Go(func() error {
		var err error
		jobs, err = s.jobs.ListActiveByCompany(gctx, company.ID)
		if err != nil {
			return fmt.Errorf("listing jobs: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	visible := make([]model.ContentSection, 0, len(snapshot.Sections))
	for _, section := range snapshot.Sections {
		if !section.IsVisible {
			continue
		}
		clean, err := content.Sanitize(section.Content)
		if err != nil {
			slog.WarnContext(ctx, "dropping unparseable section content",
				"error", err,
				"section_id", section.ID)
			clean = ""
		}
		section.Content = clean
		visible = append(visible, section)
	}
	snapshot.Sections = visible

	return &model.PublicPage{
		Snapshot: *snapshot,
		Jobs:     jobs,
	}, nil
}

func (s *careersService) Jobs(ctx context.Context, slug string, filters listing.Filters) (*listing.Result, error) {
	page, err := s.PublicPage(ctx, slug)
	if err != nil {
		return nil, err
	}

	return listing.Apply(page.Jobs, filters), nil
}

func (s *careersService) Job(ctx context.Context, companySlug, jobSlug string) (*model.Company, *model.Job, error) {
	page, err := s.PublicPage(ctx, companySlug)
	if err != nil {
		return nil, nil, err
	}

	for i := range page.Jobs {
		if page.Jobs[i].Slug == jobSlug {
			return &page.Company, &page.Jobs[i], nil
		}
	}
	return nil, nil, ErrJobNotFound
}
