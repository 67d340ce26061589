package ports

import (
	"context"

	"github.com/smartscheduler/meeting-system/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login verifies the credentials and returns a signed session token plus
	// the matching user. Failures are domain.ErrInvalidCredentials regardless
	// of whether the email exists.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
