package domain

import "time"

// ActivityEvent records a single mutation for the audit trail. Events for the
// same entity are processed in order.
type ActivityEvent struct {
	Entity    string // "project", "task" or "user"
	EntityID  string
	Action    string // "created", "updated", "deleted", "status_changed", "role_changed"
	ActorID   string
	ActorName string
	Detail    string // optional, e.g. the new status
	Timestamp time.Time
}
