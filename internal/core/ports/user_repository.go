package ports

import (
	"context"

	"github.com/devconnector/devconnector-api/internal/core/domain"
)

// UserRepository defines persistence for registered users.
type UserRepository interface {
	// Create inserts a user and returns it with its generated ID.
	// Returns domain.ErrUserExists when the email is taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
