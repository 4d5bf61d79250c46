package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile types
const (
	ProfileTypeUser  = "USER"
	ProfileTypeCeleb = "CELEB"
)

// Profile statuses
const (
	ProfileStatusActive    = "active"
	ProfileStatusSuspended = "suspended"
	ProfileStatusDeleted   = "deleted"
)

// Profile represents a public profile. USER profiles are backed by a real
// identity; CELEB profiles use synthetic ids and never hold a session.
type Profile struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	ProfileType string    `json:"profile_type"`
	Status      string    `json:"status"`
	Gender      string    `json:"gender,omitempty"`
	Profession  string    `json:"profession,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsCeleb reports whether the profile is a celebrity profile.
func (p *Profile) IsCeleb() bool {
	return p.ProfileType == ProfileTypeCeleb
}
