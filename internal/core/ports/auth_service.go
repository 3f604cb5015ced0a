package ports

import (
	"context"

	"github.com/devconnector/devconnector-api/internal/core/domain"
)

// Credentials hashes passwords and issues/verifies bearer tokens.
type Credentials interface {
	HashPassword(plain string) (string, error)
	VerifyPassword(plain, hash string) bool
	IssueToken(userID string) (string, error)
	TokenVerifier
}

// TokenVerifier resolves a token to the user ID it was issued for.
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

// RegisterInput carries the registration form.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthResult is returned on successful registration or login.
type AuthResult struct {
	Token string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Me(ctx context.Context, userID string) (*domain.User, error)
}
