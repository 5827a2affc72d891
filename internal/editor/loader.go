package editor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"careerline.app/studio/internal/model"
)

// Loaded is the starting point of an editing session.
type Loaded struct {
	Snapshot        model.Snapshot
	UpdatedAt       time.Time
	LastPublishedAt *time.Time
	// Seeded is true when no draft existed and the live content was used.
	Seeded bool
}

// Load returns the company's draft. Without one, the live snapshot is written
// as the first draft and returned. If that write fails the live snapshot is
// still returned and the failure is only logged.
func Load(ctx context.Context, api API, companyID int64) (*Loaded, error) {
	draft, err := api.FetchDraft(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("fetching draft: %w", err)
	}
	if draft != nil {
		return &Loaded{
			Snapshot:        draft.Snapshot,
			UpdatedAt:       draft.UpdatedAt,
			LastPublishedAt: draft.LastPublishedAt,
		}, nil
	}

	live, err := api.FetchLive(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("fetching live content: %w", err)
	}

	loaded := &Loaded{Snapshot: *live, Seeded: true}

	updatedAt, err := api.SaveDraft(ctx, companyID, *live)
	if err != nil {
		slog.WarnContext(ctx, "failed to seed draft from live content, editing live copy",
			"error", err,
			"company_id", companyID)
		return loaded, nil
	}

	loaded.UpdatedAt = updatedAt
	return loaded, nil
}
