package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/devconnector/devconnector-api/internal/core/domain"
	"github.com/devconnector/devconnector-api/internal/core/ports"
)

const idempotencyScopePost = "post"

type PostService struct {
	posts       ports.PostRepository
	users       ports.UserRepository
	idempotency ports.IdempotencyStore
	logger      zerolog.Logger
}

// NewPostService returns a PostService. idempotency may be nil, in which case
// Idempotency-Key headers are ignored.
func NewPostService(posts ports.PostRepository, users ports.UserRepository, idempotency ports.IdempotencyStore, logger zerolog.Logger) *PostService {
	return &PostService{posts: posts, users: users, idempotency: idempotency, logger: logger}
}

// Create publishes a post, snapshotting the author's name and avatar.
//
// With an idempotency key the first request claims the key before writing.
// Requests repeating the key return the post it created, or
// domain.ErrRequestInFlight while it is still running.
func (s *PostService) Create(ctx context.Context, in ports.CreatePostInput) (*domain.Post, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, domain.NewValidationError("text", "Text is required")
	}

	if s.idempotency == nil || in.IdempotencyKey == "" {
		return s.create(ctx, in)
	}

	scope := idempotencyScopePost + ":" + in.AuthorID
	claimed, id, err := s.idempotency.Claim(ctx, scope, in.IdempotencyKey)
	if err != nil {
		s.logger.Warn().Err(err).Msg("idempotency claim failed, creating anyway")
		return s.create(ctx, in)
	}

	if !claimed {
		if id == "" {
			return nil, domain.ErrRequestInFlight
		}
		existing, err := s.posts.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		s.logger.Info().Str("idempotency_key", in.IdempotencyKey).Str("post_id", id).Msg("idempotent replay")
		return existing, nil
	}

	post, err := s.create(ctx, in)
	if err != nil {
		if rerr := s.idempotency.Release(ctx, scope, in.IdempotencyKey); rerr != nil {
			s.logger.Warn().Err(rerr).Msg("failed to release idempotency key")
		}
		return nil, err
	}

	if err := s.idempotency.Complete(ctx, scope, in.IdempotencyKey, post.ID); err != nil {
		s.logger.Warn().Err(err).Str("post_id", post.ID).Msg("failed to store idempotency key")
	}
	return post, nil
}

func (s *PostService) create(ctx context.Context, in ports.CreatePostInput) (*domain.Post, error) {
	author, err := s.users.FindByID(ctx, in.AuthorID)
	if err != nil {
		return nil, err
	}

	post, err := s.posts.Create(ctx, &domain.Post{
		User:     author.ID,
		Text:     in.Text,
		Name:     author.Name,
		Avatar:   author.Avatar,
		Likes:    []domain.Like{},
		Comments: []domain.Comment{},
		Date:     time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create post")
		return nil, err
	}

	s.logger.Info().Str("post_id", post.ID).Str("user_id", author.ID).Msg("post created")
	return post, nil
}

func (s *PostService) List(ctx context.Context) ([]*domain.Post, error) {
	return s.posts.List(ctx)
}

func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.posts.FindByID(ctx, id)
}

func (s *PostService) Delete(ctx context.Context, id, requesterID string) error {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := post.AuthorizeDelete(requesterID); err != nil {
		return err
	}
	return s.posts.Delete(ctx, id)
}

func (s *PostService) Like(ctx context.Context, id, userID string) ([]domain.Like, error) {
	post, err := s.posts.AddLike(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return post.Likes, nil
}

func (s *PostService) Unlike(ctx context.Context, id, userID string) ([]domain.Like, error) {
	post, err := s.posts.RemoveLike(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return post.Likes, nil
}

func (s *PostService) AddComment(ctx context.Context, id, authorID, text string) ([]domain.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewValidationError("text", "Text is required")
	}

	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	comment := domain.Comment{
		ID:     uuid.NewString(),
		User:   author.ID,
		Text:   text,
		Name:   author.Name,
		Avatar: author.Avatar,
		Date:   time.Now().UTC(),
	}

	post, err := s.posts.AddComment(ctx, id, comment)
	if err != nil {
		return nil, err
	}
	return post.Comments, nil
}

func (s *PostService) RemoveComment(ctx context.Context, id, commentID, requesterID string) ([]domain.Comment, error) {
	post, err := s.posts.RemoveComment(ctx, id, commentID, requesterID)
	if err != nil {
		return nil, err
	}
	return post.Comments, nil
}
