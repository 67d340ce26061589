package domain

import (
	"errors"
	"time"
)

// ErrMeetingNotFound covers both a missing meeting and a meeting owned by a
// different user: the two cases must be indistinguishable to the caller.
var ErrMeetingNotFound = errors.New("meeting not found")

// Meeting is a scheduled event on one owner's calendar. Participants are
// free-text names with no binding to User records.
type Meeting struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Title        string    `json:"title" bson:"title"`
	Date         time.Time `json:"date" bson:"date"`
	Participants []string  `json:"participants" bson:"participants"`
	Description  string    `json:"description,omitempty" bson:"description,omitempty"`
	OwnerID      string    `json:"owner_id" bson:"owner_id"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
