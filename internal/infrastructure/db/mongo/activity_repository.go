package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/PUNEET-EMM/Project-Management/internal/core/domain"
)

const activityCollection = "activity_log"

// ActivityRepository persists the mutation audit trail.
type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(activityCollection)}
}

type mongoActivity struct {
	Entity    string `bson:"entity"`
	EntityID  string `bson:"entity_id"`
	Action    string `bson:"action"`
	ActorID   string `bson:"actor_id"`
	ActorName string `bson:"actor_name"`
	Detail    string `bson:"detail,omitempty"`
	Timestamp int64  `bson:"timestamp"`
}

func (r *ActivityRepository) Insert(ctx context.Context, event *domain.ActivityEvent) error {
	doc := mongoActivity{
		Entity:    event.Entity,
		EntityID:  event.EntityID,
		Action:    event.Action,
		ActorID:   event.ActorID,
		ActorName: event.ActorName,
		Detail:    event.Detail,
		Timestamp: event.Timestamp.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (r *ActivityRepository) Recent(ctx context.Context, limit int) ([]domain.ActivityEvent, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.ActivityEvent
	for cur.Next(ctx) {
		var ma mongoActivity
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode activity: %w", err)
		}
		out = append(out, domain.ActivityEvent{
			Entity:    ma.Entity,
			EntityID:  ma.EntityID,
			Action:    ma.Action,
			ActorID:   ma.ActorID,
			ActorName: ma.ActorName,
			Detail:    ma.Detail,
			Timestamp: unixToTime(ma.Timestamp),
		})
	}
	return out, cur.Err()
}
