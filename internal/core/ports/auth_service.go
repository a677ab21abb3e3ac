package ports

import (
	"context"

	"github.com/dqexpress/courier-tracking/internal/core/domain"
)

// AuthService implements sign-up, sign-in and the admin gate.
type AuthService interface {
	Register(ctx context.Context, email, password, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Capabilities derives the advisory permission set for a session.
	// True iff the role claim is admin or the email exactly matches a
	// configured allow-list entry.
	Capabilities(email, role string) domain.Capabilities
}
