package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/PUNEET-EMM/Project-Management/internal/api/metrics"
	"github.com/PUNEET-EMM/Project-Management/internal/core/domain"
	"github.com/PUNEET-EMM/Project-Management/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis) for activity entries.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, event domain.ActivityEvent) (bool, error)
	Mark(ctx context.Context, event domain.ActivityEvent) error
}

type activityService struct {
	repo  ports.ActivityRepository
	dedup DedupChecker
	log   zerolog.Logger
}

// NewActivityService returns an ActivityService implementation that dedupes
// and persists audit-trail entries.
func NewActivityService(repo ports.ActivityRepository, dedup DedupChecker, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, dedup: dedup, log: log}
}

// Process deduplicates and persists a single activity event.
func (s *activityService) Process(ctx context.Context, event domain.ActivityEvent) error {
	start := time.Now()

	isDup, err := s.dedup.IsDuplicate(ctx, event)
	if err != nil {
		s.log.Warn().Err(err).Str("entity_id", event.EntityID).Msg("dedup check failed, recording anyway")
	} else if isDup {
		metrics.ActivityDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Str("entity_id", event.EntityID).Str("action", event.Action).Msg("duplicate activity skipped")
		return nil
	}
	metrics.ActivityDedupTotal.WithLabelValues("miss").Inc()

	if markErr := s.dedup.Mark(ctx, event); markErr != nil {
		s.log.Warn().Err(markErr).Str("entity_id", event.EntityID).Msg("failed to set dedup key")
	}

	if err := s.repo.Insert(ctx, &event); err != nil {
		metrics.ActivityErrorsTotal.WithLabelValues("insert_failed").Inc()
		return fmt.Errorf("record activity: %w", err)
	}

	metrics.ActivityRecordedTotal.WithLabelValues(event.Entity, event.Action).Inc()
	metrics.ActivityProcessingDuration.WithLabelValues(event.Entity).Observe(time.Since(start).Seconds())
	return nil
}

// emitActivity forwards a mutation to the activity sink, stamping the event.
// A nil sink (tests) drops the event.
func emitActivity(sink ports.ActivitySink, actor *domain.User, entity, id, action, detail string) {
	if sink == nil {
		return
	}
	sink.Record(domain.ActivityEvent{
		Entity:    entity,
		EntityID:  id,
		Action:    action,
		ActorID:   actor.ID,
		ActorName: actor.Name,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	})
}
