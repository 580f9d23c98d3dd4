package ports

import "context"

// Snapshot keys. Each key holds one serialized whole-collection value and is
// rewritten atomically after every mutation of that collection.
const (
	SnapshotAuth     = "auth"
	SnapshotUsers    = "users"
	SnapshotProjects = "projects"
	SnapshotTasks    = "tasks"
)

// SnapshotStore is the durable key-value storage behind the entity store and
// the session. Load returns domain.ErrSnapshotMissing when the key has never
// been written (or was deleted).
type SnapshotStore interface {
	Save(ctx context.Context, key string, value []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
