package ports

import (
	"context"

	"github.com/smartscheduler/meeting-system/internal/core/domain"
)

// AuthRepository defines the interface for user persistence.
type AuthRepository interface {
	// FindByEmail matches the email exactly as persisted (case-sensitive).
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create persists a new user. Returns domain.ErrUserExists when the
	// email is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
