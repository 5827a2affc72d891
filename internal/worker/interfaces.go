package worker

import (
	"context"

	"github.com/redis/go-redis/v9"

	"careerline.app/studio/internal/model"
	"careerline.app/studio/internal/queue"
)

// Consumer abstracts the message queue for testability.
type Consumer interface {
	Read(ctx context.Context) ([]queue.Message, error)
	Ack(ctx context.Context, msg queue.Message) error
	Requeue(ctx context.Context, msg queue.Message, errMsg string) error
	SendDLQ(ctx context.Context, msg queue.Message, errMsg string) error
}

// PendingClaimer is the part of the redis client the reclaimer needs.
// *redis.Client satisfies it.
type PendingClaimer interface {
	XPendingExt(ctx context.Context, a *redis.XPendingExtArgs) *redis.XPendingExtCmd
	XClaim(ctx context.Context, a *redis.XClaimArgs) *redis.XMessageSliceCmd
}

// EventProcessor handles one event. *Processor is the production implementation.
type EventProcessor interface {
	Process(ctx context.Context, msg queue.Message) error
}

// PageRefresher rebuilds a public page and stores it in the page cache.
// service.CareersService satisfies it.
type PageRefresher interface {
	Refresh(ctx context.Context, slug string) (*model.PublicPage, error)
}

// Notifier tells a company owner about a new application.
type Notifier interface {
	ApplicationReceived(ctx context.Context, n ApplicationNotice) error
}

// SessionPurger deletes expired login sessions. store.SessionStore satisfies it.
type SessionPurger interface {
	DeleteExpired(ctx context.Context) error
}
