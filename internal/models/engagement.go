package models

import (
	"time"

	"github.com/google/uuid"
)

// Engagement statuses
const (
	EngagementStatusSaved    = "SAVED"
	EngagementStatusFinished = "FINISHED"
)

// EngagementRecord links a profile to a content item, unique per pair.
type EngagementRecord struct {
	UserID    uuid.UUID `json:"user_id"`
	ContentID string    `json:"content_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Content is a tracked content item (book, article, video).
type Content struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}
