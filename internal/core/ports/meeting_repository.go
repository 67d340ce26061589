package ports

import (
	"context"
	"time"

	"github.com/smartscheduler/meeting-system/internal/core/domain"
)

// MeetingUpdate carries the fields of a partial update. Nil pointers mean
// "leave unchanged". Owner and creation timestamp are never updatable.
type MeetingUpdate struct {
	Title        *string
	Date         *time.Time
	Participants *[]string
	Description  *string
}

// MeetingRepository defines persistence operations for meetings. Every query
// that takes an ownerID filters by it; a meeting that exists under another
// owner is reported as domain.ErrMeetingNotFound.
type MeetingRepository interface {
	Create(ctx context.Context, m *domain.Meeting) (*domain.Meeting, error)
	// ListByOwner returns all of the owner's meetings ordered by date ascending.
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Meeting, error)
	FindByID(ctx context.Context, id, ownerID string) (*domain.Meeting, error)
	Update(ctx context.Context, id, ownerID string, update MeetingUpdate) (*domain.Meeting, error)
	Delete(ctx context.Context, id, ownerID string) error
}
