package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"careerline.app/studio/internal/model"
	"careerline.app/studio/internal/queue"
	"careerline.app/studio/internal/store"
)

// ErrPermanent marks failures that retrying cannot fix. Such messages are acked.
var ErrPermanent = errors.New("permanent failure")

type ProcessorStores struct {
	Companies    store.CompanyStore
	Jobs         store.JobStore
	Applications store.ApplicationStore
	Users        store.UserStore
}

type Processor struct {
	stores   ProcessorStores
	pages    PageRefresher
	notifier Notifier
}

func NewProcessor(stores ProcessorStores, pages PageRefresher, notifier Notifier) *Processor {
	return &Processor{
		stores:   stores,
		pages:    pages,
		notifier: notifier,
	}
}

func (p *Processor) Process(ctx context.Context, msg queue.Message) error {
	var err error
	switch msg.EventType {
	case queue.EventPagePublished:
		err = p.warmPage(ctx, msg)
	case queue.EventApplicationSubmitted:
		err = p.notifyOwner(ctx, msg)
	default:
		err = fmt.Errorf("%w: unknown event type %q", ErrPermanent, msg.EventType)
	}

	if errors.Is(err, ErrPermanent) {
		slog.WarnContext(ctx, "dropping unprocessable event", "error", err)
		return nil
	}
	return err
}

// warmPage rebuilds the public page right after a publish so the first
// candidate request is served from the cache.
func (p *Processor) warmPage(ctx context.Context, msg queue.Message) error {
	company, err := p.stores.Companies.GetByID(ctx, msg.CompanyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: company %d no longer exists", ErrPermanent, msg.CompanyID)
		}
		return fmt.Errorf("getting company: %w", err)
	}

	page, err := p.pages.Refresh(ctx, company.Slug)
	if err != nil {
		return fmt.Errorf("refreshing page: %w", err)
	}

	slog.InfoContext(ctx, "public page warmed",
		"slug", company.Slug,
		"sections", len(page.Sections),
		"jobs", len(page.Jobs))
	return nil
}

func (p *Processor) notifyOwner(ctx context.Context, msg queue.Message) error {
	if msg.ApplicationID == nil {
		return fmt.Errorf("%w: application_submitted without application_id", ErrPermanent)
	}

	app, err := p.stores.Applications.GetByID(ctx, *msg.ApplicationID)
	if err != nil {
		return lookupErr("application", err)
	}
	job, err := p.stores.Jobs.GetByID(ctx, app.JobID)
	if err != nil {
		return lookupErr("job", err)
	}
	company, err := p.stores.Companies.GetByID(ctx, app.CompanyID)
	if err != nil {
		return lookupErr("company", err)
	}
	owner, err := p.stores.Users.GetByID(ctx, company.OwnerUserID)
	if err != nil {
		return lookupErr("owner", err)
	}

	return p.notifier.ApplicationReceived(ctx, ApplicationNotice{
		Application: *app,
		Job:         *job,
		Company:     *company,
		Owner:       *owner,
	})
}

func lookupErr(what string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %s not found", ErrPermanent, what)
	}
	return fmt.Errorf("getting %s: %w", what, err)
}

// ApplicationNotice is everything a notification about a new application needs.
type ApplicationNotice struct {
	Application model.Application
	Job         model.Job
	Company     model.Company
	Owner       model.User
}
