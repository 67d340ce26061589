package ports

import (
	"context"
	"time"

	"github.com/smartscheduler/meeting-system/internal/core/domain"
)

// CreateMeetingInput carries all data needed to create a new meeting. OwnerID
// comes from the verified session, never from the request body.
type CreateMeetingInput struct {
	Title        string
	Date         time.Time
	Participants []string
	Description  string
	OwnerID      string
}

// UpdateMeetingInput carries a partial update for one meeting.
type UpdateMeetingInput struct {
	ID      string
	OwnerID string
	Fields  MeetingUpdate
}

// MeetingService defines use-case operations for meetings. All operations are
// owner-scoped: id lookups under the wrong owner yield ErrMeetingNotFound.
type MeetingService interface {
	Create(ctx context.Context, input CreateMeetingInput) (*domain.Meeting, error)
	List(ctx context.Context, ownerID string) ([]*domain.Meeting, error)
	Get(ctx context.Context, id, ownerID string) (*domain.Meeting, error)
	Update(ctx context.Context, input UpdateMeetingInput) (*domain.Meeting, error)
	Delete(ctx context.Context, id, ownerID string) error
}
