// Package metrics defines and registers all custom Prometheus metrics for the
// project-management API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "projectmgmt"

// ── Mutation metrics ──────────────────────────────────────────────────────────

// ProjectMutationsTotal counts project mutations by action
// ("created", "updated", "deleted").
var ProjectMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "project_mutations_total",
		Help:      "Total number of project mutations, by action.",
	},
	[]string{"action"},
)

// TaskMutationsTotal counts task mutations by action
// ("created", "updated", "deleted", "status_changed").
var TaskMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "task_mutations_total",
		Help:      "Total number of task mutations, by action.",
	},
	[]string{"action"},
)

// UserMutationsTotal counts user mutations by action ("role_changed").
var UserMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_mutations_total",
		Help:      "Total number of user mutations, by action.",
	},
	[]string{"action"},
)

// AuthorizationDeniedTotal counts mutation attempts rejected by the
// permission rules. Label:
//   - resource: "project", "task", "task_status" or "role"
var AuthorizationDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authorization_denied_total",
		Help:      "Total number of mutations rejected by permission checks, by resource.",
	},
	[]string{"resource"},
)

// ── Activity pipeline metrics ─────────────────────────────────────────────────

// ActivityRecordedTotal counts audit-trail entries written successfully.
var ActivityRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_recorded_total",
		Help:      "Total number of activity entries recorded, by entity and action.",
	},
	[]string{"entity", "action"},
)

// ActivityErrorsTotal counts activity entries that failed processing.
var ActivityErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_errors_total",
		Help:      "Total number of activity entries that failed processing.",
	},
	[]string{"reason"},
)

// ActivityDedupTotal counts deduplication decisions: "hit" (duplicate,
// skipped) or "miss" (new entry, recorded).
var ActivityDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_dedup_total",
		Help:      "Total number of deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ActivityProcessingDuration measures how long a single activity entry takes
// from dequeue to persistence.
var ActivityProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "activity_processing_duration_seconds",
		Help:      "Duration of activity processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"entity"},
)

// ActivityQueueDepth tracks the number of events waiting in each dispatcher
// worker channel.
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
