package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"

	"careerline.app/studio/common/id"
	"careerline.app/studio/internal/client"
	"careerline.app/studio/internal/content"
	"careerline.app/studio/internal/model"
)

const (
	// ErrorBannerTTL is how long a save or publish error stays visible.
	ErrorBannerTTL = 5 * time.Second

	GenericErrorMessage = "Something went wrong. Please try again."
)

var (
	ErrUnknownField       = errors.New("unknown field")
	ErrInvalidSectionType = errors.New("invalid section type")
	ErrSectionNotFound    = errors.New("section not found")
	ErrBadOrder           = errors.New("new order must contain every section exactly once")
)

// Field names accepted by SetField.
const (
	FieldName            = "name"
	FieldTagline         = "tagline"
	FieldWebsite         = "website"
	FieldLogoURL         = "logo_url"
	FieldBannerURL       = "banner_url"
	FieldPrimaryColor    = "primary_color"
	FieldSecondaryColor  = "secondary_color"
	FieldAccentColor     = "accent_color"
	FieldCultureVideoURL = "culture_video_url"
)

// Controller is the in-memory editor state of one company's careers page.
// Its methods are safe for concurrent use; at most one save is in flight.
type Controller struct {
	api       API
	clock     clockwork.Clock
	companyID int64

	mu              sync.Mutex
	state           model.Snapshot
	dirty           bool
	version         uint64
	lastSavedAt     time.Time
	lastPublishedAt *time.Time
	errMsg          string
	errGen          uint64

	saveMu sync.Mutex
	saving atomic.Bool
}

type Option func(*Controller)

func WithClock(c clockwork.Clock) Option {
	return func(ctrl *Controller) {
		ctrl.clock = c
	}
}

func NewController(api API, companyID int64, loaded *Loaded, opts ...Option) *Controller {
	c := &Controller{
		api:             api,
		clock:           clockwork.NewRealClock(),
		companyID:       companyID,
		state:           cloneSnapshot(loaded.Snapshot),
		lastSavedAt:     loaded.UpdatedAt,
		lastPublishedAt: loaded.LastPublishedAt,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a copy of the current form state.
func (c *Controller) State() model.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneSnapshot(c.state)
}

func (c *Controller) Dirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dirty
}

func (c *Controller) Saving() bool {
	return c.saving.Load()
}

func (c *Controller) LastSavedAt() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSavedAt
}

func (c *Controller) LastPublishedAt() *time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastPublishedAt
}

// Error is the message of the error banner, empty when none is showing.
func (c *Controller) Error() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

func (c *Controller) SetField(field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch field {
	case FieldName:
		c.state.Company.Name = value
	case FieldTagline:
		c.state.Company.Tagline = value
	case FieldWebsite:
		c.state.Company.Website = value
	case FieldLogoURL:
		c.state.Company.LogoURL = value
	case FieldBannerURL:
		c.state.Company.BannerURL = value
	case FieldPrimaryColor:
		c.state.Settings.PrimaryColor = value
	case FieldSecondaryColor:
		c.state.Settings.SecondaryColor = value
	case FieldAccentColor:
		c.state.Settings.AccentColor = value
	case FieldCultureVideoURL:
		c.state.Settings.CultureVideoURL = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	c.touch()
	return nil
}

func (c *Controller) SetDarkMode(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Settings.DarkMode = on
	c.touch()
}

// AddSection appends a section of type t prefilled with its default template
// and returns its id.
func (c *Controller) AddSection(t model.SectionType) (string, error) {
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSectionType, t)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	section := model.ContentSection{
		ID:           id.NewString(),
		Title:        content.DefaultTitle(t),
		Type:         t,
		Content:      content.DefaultTemplate(t),
		IsVisible:    true,
		DisplayOrder: len(c.state.Sections),
	}
	c.state.Sections = append(c.state.Sections, section)
	c.touch()
	return section.ID, nil
}

// ReorderSections replaces the section order with ids.
func (c *Controller) ReorderSections(ids []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(ids) != len(c.state.Sections) {
		return ErrBadOrder
	}

	byID := make(map[string]model.ContentSection, len(c.state.Sections))
	for _, s := range c.state.Sections {
		byID[s.ID] = s
	}

	reordered := make([]model.ContentSection, 0, len(ids))
	for i, sid := range ids {
		s, ok := byID[sid]
		if !ok {
			return ErrBadOrder
		}
		delete(byID, sid)
		s.DisplayOrder = i
		reordered = append(reordered, s)
	}

	c.state.Sections = reordered
	c.touch()
	return nil
}

func (c *Controller) RemoveSection(sectionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := slices.IndexFunc(c.state.Sections, func(s model.ContentSection) bool { return s.ID == sectionID })
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrSectionNotFound, sectionID)
	}

	c.state.Sections = slices.Delete(c.state.Sections, idx, idx+1)
	for i := range c.state.Sections {
		c.state.Sections[i].DisplayOrder = i
	}
	c.touch()
	return nil
}

func (c *Controller) ToggleSection(sectionID string, visible bool) error {
	return c.updateSection(sectionID, func(s *model.ContentSection) { s.IsVisible = visible })
}

func (c *Controller) SetSectionTitle(sectionID, title string) error {
	return c.updateSection(sectionID, func(s *model.ContentSection) { s.Title = title })
}

func (c *Controller) SetSectionContent(sectionID, html string) error {
	return c.updateSection(sectionID, func(s *model.ContentSection) { s.Content = html })
}

func (c *Controller) updateSection(sectionID string, apply func(s *model.ContentSection)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.state.Sections {
		if c.state.Sections[i].ID == sectionID {
			apply(&c.state.Sections[i])
			c.touch()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrSectionNotFound, sectionID)
}

// Save writes the current state as the draft, waiting for any save already
// in flight to finish first.
func (c *Controller) Save(ctx context.Context) error {
	c.saveMu.Lock()
	defer c.saveMu.Unlock()
	return c.save(ctx)
}

// TrySave starts a save only when the state is dirty and no save is in
// flight. It reports whether a save ran.
func (c *Controller) TrySave(ctx context.Context) (bool, error) {
	if !c.saveMu.TryLock() {
		return false, nil
	}
	defer c.saveMu.Unlock()

	if !c.Dirty() {
		return false, nil
	}
	return true, c.save(ctx)
}

// save must be called with saveMu held.
func (c *Controller) save(ctx context.Context) error {
	c.mu.Lock()
	snapshot := cloneSnapshot(c.state)
	version := c.version
	c.mu.Unlock()

	c.saving.Store(true)
	defer c.saving.Store(false)

	updatedAt, err := c.api.SaveDraft(ctx, c.companyID, snapshot)
	if err != nil {
		slog.WarnContext(ctx, "draft save failed", "error", err, "company_id", c.companyID)
		c.showError(err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Edits made while the request was in flight keep the state dirty.
	if c.version == version {
		c.dirty = false
	}
	c.lastSavedAt = updatedAt
	return nil
}

// Publish saves pending edits first, then makes the draft live.
func (c *Controller) Publish(ctx context.Context) (*client.PublishResult, error) {
	c.saveMu.Lock()
	defer c.saveMu.Unlock()

	if c.Dirty() {
		if err := c.save(ctx); err != nil {
			return nil, err
		}
	}

	result, err := c.api.Publish(ctx, c.companyID)
	if err != nil {
		slog.WarnContext(ctx, "publish failed", "error", err, "company_id", c.companyID)
		c.showError(err)
		return nil, err
	}

	c.mu.Lock()
	publishedAt := result.PublishedAt
	c.lastPublishedAt = &publishedAt
	c.mu.Unlock()
	return result, nil
}

// touch must be called with mu held.
func (c *Controller) touch() {
	c.dirty = true
	c.version++
}

func (c *Controller) showError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.errMsg = UserMessage(err)
	c.errGen++
	gen := c.errGen
	c.clock.AfterFunc(ErrorBannerTTL, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.errGen == gen {
			c.errMsg = ""
		}
	})
}

// UserMessage is the text shown for err: the backend's own message when it
// sent one, a generic retry hint otherwise.
func UserMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return GenericErrorMessage
}

func cloneSnapshot(s model.Snapshot) model.Snapshot {
	s.Sections = slices.Clone(s.Sections)
	if s.Sections == nil {
		s.Sections = []model.ContentSection{}
	}
	return s
}
