package ports

import (
	"context"

	"github.com/devconnector/devconnector-api/internal/core/domain"
)

// CreatePostInput carries a new post.
type CreatePostInput struct {
	AuthorID string
	Text     string
	// IdempotencyKey, when set, makes retries of the same request return the
	// post created by the first one.
	IdempotencyKey string
}

// PostService defines use-case operations for the feed.
type PostService interface {
	Create(ctx context.Context, input CreatePostInput) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	Delete(ctx context.Context, id, requesterID string) error
	Like(ctx context.Context, id, userID string) ([]domain.Like, error)
	Unlike(ctx context.Context, id, userID string) ([]domain.Like, error)
	AddComment(ctx context.Context, id, authorID, text string) ([]domain.Comment, error)
	RemoveComment(ctx context.Context, id, commentID, requesterID string) ([]domain.Comment, error)
}
