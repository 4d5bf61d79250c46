package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/readtrace/readtrace-backend/internal/models"
)

const activityLogCollection = "activity_logs"

// MongoActivityStore reads the append-only activity log. Entries are written
// by the engagement and follow write paths; this store only queries them.
type MongoActivityStore struct {
	db *mongo.Database
}

func NewMongoActivityStore(db *mongo.Database) *MongoActivityStore {
	return &MongoActivityStore{db: db}
}

// EnsureActivityIndexes configures indexes for the activity_logs collection.
// Called on startup from main after Mongo has connected.
func (s *MongoActivityStore) EnsureActivityIndexes(ctx context.Context) error {
	col := s.db.Collection(activityLogCollection)

	// Compound index on (user_id, created_at) to support keyset pagination.
	idxModels := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("idx_user_created"),
		},
	}

	for _, m := range idxModels {
		if _, err := col.Indexes().CreateOne(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

// activityDoc is the raw storage shape. Content stays a bson.RawValue because
// older write paths stored it as a one-element array while newer ones store a
// single document; normalizeContentRef resolves both.
type activityDoc struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty"`
	CreatedAt  time.Time              `bson:"created_at"`
	UserID     string                 `bson:"user_id"`
	ActionType string                 `bson:"action_type"`
	TargetType string                 `bson:"target_type"`
	TargetID   string                 `bson:"target_id"`
	Content    bson.RawValue          `bson:"content,omitempty"`
	Metadata   map[string]interface{} `bson:"metadata,omitempty"`
}

// LogsBefore returns up to limit entries for the user with createdAt strictly
// before the cursor (all entries when before is nil), newest first.
func (s *MongoActivityStore) LogsBefore(ctx context.Context, userID uuid.UUID, before *time.Time, limit int) ([]models.ActivityLogEntry, error) {
	filter := bson.M{"user_id": userID.String()}
	if before != nil {
		filter["created_at"] = bson.M{"$lt": *before}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := s.db.Collection(activityLogCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var entries []models.ActivityLogEntry
	for cur.Next(ctx) {
		var doc activityDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		content, err := normalizeContentRef(doc.Content)
		if err != nil {
			return nil, err
		}
		entries = append(entries, models.ActivityLogEntry{
			ID:           doc.ID,
			CreatedAt:    doc.CreatedAt,
			UserIDString: doc.UserID,
			ActionType:   doc.ActionType,
			TargetType:   doc.TargetType,
			TargetID:     doc.TargetID,
			Content:      content,
			Metadata:     doc.Metadata,
		})
	}
	return entries, cur.Err()
}
