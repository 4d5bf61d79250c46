package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContentRef is the lightweight content projection attached to a feed entry.
type ContentRef struct {
	ID          string `bson:"id" json:"id"`
	Title       string `bson:"title" json:"title"`
	ContentType string `bson:"content_type,omitempty" json:"content_type,omitempty"`
}

// ActivityLogEntry is one append-only feed entry. Entries are written by the
// engagement and follow write paths and never mutated afterwards; this service
// only reads them.
//
// Content is optional and nullable. In storage it may appear as either a single
// document or a one-element array depending on which write path produced the
// entry; the store normalizes it before an entry leaves the storage layer.
type ActivityLogEntry struct {
	ID           primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	CreatedAt    time.Time              `bson:"created_at" json:"created_at"`
	UserIDString string                 `bson:"user_id" json:"user_id"`
	ActionType   string                 `bson:"action_type" json:"action_type"`
	TargetType   string                 `bson:"target_type" json:"target_type"`
	TargetID     string                 `bson:"target_id" json:"target_id"`
	Content      *ContentRef            `bson:"-" json:"content,omitempty"`
	Metadata     map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
}
