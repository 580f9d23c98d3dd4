package ports

import (
	"context"

	"github.com/PUNEET-EMM/Project-Management/internal/core/domain"
)

// ActivitySink accepts activity events for asynchronous recording. Services
// emit on every mutation; delivery order is guaranteed per entity id.
type ActivitySink interface {
	Record(event domain.ActivityEvent)
}

// ActivityService processes a single activity event: deduplicate, persist.
type ActivityService interface {
	Process(ctx context.Context, event domain.ActivityEvent) error
}

// ActivityRepository persists audit-trail entries.
type ActivityRepository interface {
	Insert(ctx context.Context, event *domain.ActivityEvent) error
	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]domain.ActivityEvent, error)
}
