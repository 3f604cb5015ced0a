package ports

import (
	"context"

	"github.com/devconnector/devconnector-api/internal/core/domain"
)

// PostRepository defines persistence for the feed. Like and comment edits are
// single atomic writes, so concurrent reactions on one post never conflict.
type PostRepository interface {
	Create(ctx context.Context, p *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// List returns every post, newest first.
	List(ctx context.Context) ([]*domain.Post, error)
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) (int64, error)

	// AddLike puts userID at the head of the likes. Returns domain.ErrAlreadyLiked
	// if userID is already there.
	AddLike(ctx context.Context, postID, userID string) (*domain.Post, error)
	// RemoveLike returns domain.ErrNotLiked if userID never liked the post.
	RemoveLike(ctx context.Context, postID, userID string) (*domain.Post, error)
	// AddComment puts c at the head of the comments.
	AddComment(ctx context.Context, postID string, c domain.Comment) (*domain.Post, error)
	// RemoveComment deletes commentID when requesterID wrote it. Returns
	// domain.ErrCommentNotFound or domain.ErrNotAuthorized otherwise.
	RemoveComment(ctx context.Context, postID, commentID, requesterID string) (*domain.Post, error)
}

// IdempotencyStore reserves client-supplied keys so that only one request per
// key performs the operation.
type IdempotencyStore interface {
	// Claim reserves key for the caller. claimed is true for the first caller.
	// Later callers get the id passed to Complete, or "" while the first
	// request is still running.
	Claim(ctx context.Context, scope, key string) (claimed bool, resourceID string, err error)
	// Complete records the id of the resource the claiming request produced.
	Complete(ctx context.Context, scope, key, resourceID string) error
	// Release drops a claim whose request failed, so a retry can run again.
	Release(ctx context.Context, scope, key string) error
}
