package ports

import (
	"context"

	"github.com/smartscheduler/meeting-system/internal/core/domain"
)

// InviteRepository defines persistence operations for invite links. Links are
// write-once: no update or delete operations exist, and expired links remain
// in storage.
type InviteRepository interface {
	// Create persists a new link. Returns domain.ErrDuplicateToken when the
	// token collides with an existing one (unique index violation).
	Create(ctx context.Context, link *domain.InviteLink) (*domain.InviteLink, error)
	FindByToken(ctx context.Context, token string) (*domain.InviteLink, error)
}
