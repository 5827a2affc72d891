// Package editor holds the client-side state of the careers page editor:
// the draft loader, the in-memory form state with its save and publish
// actions, and the autosave timer.
package editor

import (
	"context"
	"time"

	"careerline.app/studio/internal/client"
	"careerline.app/studio/internal/model"
)

// API is the part of the careerline API the editor calls. *client.Client implements it.
type API interface {
	FetchDraft(ctx context.Context, companyID int64) (*model.Draft, error)
	FetchLive(ctx context.Context, companyID int64) (*model.Snapshot, error)
	SaveDraft(ctx context.Context, companyID int64, snapshot model.Snapshot) (time.Time, error)
	Publish(ctx context.Context, companyID int64) (*client.PublishResult, error)
}

var _ API = (*client.Client)(nil)
