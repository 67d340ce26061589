package domain

import (
	"errors"
	"time"
)

// InviteScope is the access level attached to an invite link.
type InviteScope string

const (
	// ScopeView grants read access to the owner's meeting list.
	ScopeView InviteScope = "view"
	// ScopeBook is recorded and returned but grants no write capability in
	// the current resolver; kept for forward compatibility with booking.
	ScopeBook InviteScope = "book"
)

var ErrInvalidScope = errors.New("invalid invite scope")
var ErrInviteNotFound = errors.New("invite link not found")
var ErrInviteExpired = errors.New("invite link expired")
var ErrDuplicateToken = errors.New("invite token already exists")

// IsValid reports whether s is a recognised scope.
func (s InviteScope) IsValid() bool {
	return s == ScopeView || s == ScopeBook
}

// InviteLink is a capability record: an unguessable token granting scoped,
// optionally time-bounded read access to one owner's meetings.
type InviteLink struct {
	ID        string      `json:"id" bson:"_id,omitempty"`
	OwnerID   string      `json:"owner_id" bson:"owner_id"`
	Token     string      `json:"token" bson:"token"`
	Scope     InviteScope `json:"scope" bson:"scope"`
	ExpiresAt *time.Time  `json:"expires_at,omitempty" bson:"expires_at,omitempty"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
}

// Expired reports whether the link's expiry, if set, is past at the given
// instant. Expired links stay in storage; expiry is enforced at resolution.
func (l *InviteLink) Expired(at time.Time) bool {
	return l.ExpiresAt != nil && l.ExpiresAt.Before(at)
}
