package ports

import (
	"context"
	"time"

	"github.com/smartscheduler/meeting-system/internal/core/domain"
)

// CreateInviteInput carries the parameters for minting a new invite link.
type CreateInviteInput struct {
	OwnerID string
	// Scope defaults to "view" when empty.
	Scope string
	// TTLHours of 0 means the link never expires.
	TTLHours int
}

// CreateInviteResult is returned after a link is minted.
type CreateInviteResult struct {
	URL       string
	Token     string
	Scope     domain.InviteScope
	ExpiresAt *time.Time
}

// SharedMeeting is the read-only projection exposed through an invite link.
// Description and ownership fields are withheld unconditionally.
type SharedMeeting struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Date         time.Time `json:"date"`
	Participants []string  `json:"participants"`
}

// InviteResolution is the outcome of resolving a presented invite token.
// Scope is informational: "book" grants no extra capability here.
type InviteResolution struct {
	OwnerID  string
	Scope    domain.InviteScope
	Meetings []SharedMeeting
}

// InviteService mints and resolves shareable invite links.
type InviteService interface {
	Create(ctx context.Context, input CreateInviteInput) (*CreateInviteResult, error)
	Resolve(ctx context.Context, token string) (*InviteResolution, error)
}
