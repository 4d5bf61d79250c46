package models

import (
	"time"

	"github.com/google/uuid"
)

// FollowEdge is a directed follow relationship. The pair is unique and
// self-loops are rejected at the schema level. A friendship exists when
// both (A,B) and (B,A) are present.
type FollowEdge struct {
	FollowerID  uuid.UUID `json:"follower_id"`
	FollowingID uuid.UUID `json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}
