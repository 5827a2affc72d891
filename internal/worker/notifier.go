package worker

import (
	"context"
	"log/slog"
)

// LogNotifier records owner notifications in the log. Email delivery is not
// part of this service.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (LogNotifier) ApplicationReceived(ctx context.Context, n ApplicationNotice) error {
	slog.InfoContext(ctx, "new application received",
		"owner_email", n.Owner.Email,
		"company", n.Company.Name,
		"job", n.Job.Title,
		"candidate", n.Application.Name,
		"application_id", n.Application.ID)
	return nil
}
