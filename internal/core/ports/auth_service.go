package ports

import (
	"context"
	"time"

	"github.com/skyparcel/admin-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout revokes the token with the given id until its natural expiry.
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}
