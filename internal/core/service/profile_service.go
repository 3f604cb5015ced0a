package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/devconnector/devconnector-api/internal/core/domain"
	"github.com/devconnector/devconnector-api/internal/core/ports"
)

type ProfileService struct {
	profiles ports.ProfileRepository
	users    ports.UserRepository
	posts    ports.PostRepository
	github   ports.RepoFetcher
	logger   zerolog.Logger
}

func NewProfileService(
	profiles ports.ProfileRepository,
	users ports.UserRepository,
	posts ports.PostRepository,
	github ports.RepoFetcher,
	logger zerolog.Logger,
) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		users:    users,
		posts:    posts,
		github:   github,
		logger:   logger,
	}
}

func (s *ProfileService) GetMine(ctx context.Context, userID string) (*domain.Profile, error) {
	p, err := s.profiles.FindByUserID(ctx, userID)
	return p, noProfile(err)
}

// Upsert merges fields into the caller's profile, creating it on first use.
func (s *ProfileService) Upsert(ctx context.Context, userID string, fields domain.ProfileUpdate) (*domain.Profile, error) {
	update := func(p *domain.Profile) error {
		p.Apply(fields)
		return nil
	}

	p, err := s.profiles.Update(ctx, userID, update)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, err
	}

	verr := &domain.ValidationError{}
	if fields.Status == "" {
		verr.Add("status", "Status is required")
	}
	if len(domain.ParseSkills(fields.Skills)) == 0 {
		verr.Add("skills", "Skills is required")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	fresh := &domain.Profile{
		User:       domain.UserRef{ID: userID},
		Skills:     []string{},
		Experience: []domain.Experience{},
		Education:  []domain.Education{},
		Date:       time.Now().UTC(),
	}
	fresh.Apply(fields)

	created, err := s.profiles.Create(ctx, fresh)
	if errors.Is(err, domain.ErrProfileExists) {
		// Lost a creation race with a concurrent request; merge into the winner.
		return s.profiles.Update(ctx, userID, update)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Msg("profile created")
	return created, nil
}

func (s *ProfileService) List(ctx context.Context) ([]*domain.Profile, error) {
	return s.profiles.List(ctx)
}

func (s *ProfileService) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	return s.profiles.FindByUserID(ctx, userID)
}

// DeleteAccount removes the user's posts, profile and account, in that order.
// The steps are not transactional; a failure leaves the earlier deletions in place.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID string) error {
	n, err := s.posts.DeleteByUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.profiles.DeleteByUserID(ctx, userID); err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
		return err
	}
	if err := s.users.Delete(ctx, userID); err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	s.logger.Info().Str("user_id", userID).Int64("posts_deleted", n).Msg("account deleted")
	return nil
}

func (s *ProfileService) AddExperience(ctx context.Context, userID string, in ports.ExperienceInput) (*domain.Profile, error) {
	exp := domain.Experience{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	}
	if err := exp.Validate(); err != nil {
		return nil, err
	}

	p, err := s.profiles.AddExperience(ctx, userID, exp)
	return p, noProfile(err)
}

func (s *ProfileService) RemoveExperience(ctx context.Context, userID, experienceID string) (*domain.Profile, error) {
	p, err := s.profiles.RemoveExperience(ctx, userID, experienceID)
	return p, noProfile(err)
}

func (s *ProfileService) AddEducation(ctx context.Context, userID string, in ports.EducationInput) (*domain.Profile, error) {
	edu := domain.Education{
		ID:           uuid.NewString(),
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         in.From,
		To:           in.To,
		Current:      in.Current,
		Description:  in.Description,
	}
	if err := edu.Validate(); err != nil {
		return nil, err
	}

	p, err := s.profiles.AddEducation(ctx, userID, edu)
	return p, noProfile(err)
}

func (s *ProfileService) RemoveEducation(ctx context.Context, userID, educationID string) (*domain.Profile, error) {
	p, err := s.profiles.RemoveEducation(ctx, userID, educationID)
	return p, noProfile(err)
}

func (s *ProfileService) GitHubRepos(ctx context.Context, username string) ([]domain.Repo, error) {
	repos, err := s.github.FetchRepos(ctx, username)
	if err != nil {
		if !errors.Is(err, domain.ErrGitHubProfileNotFound) {
			s.logger.Warn().Err(err).Str("username", username).Msg("github lookup failed")
		}
		return nil, domain.ErrGitHubProfileNotFound
	}
	return repos, nil
}

// noProfile rewords a missing profile for operations on the caller's own profile.
func noProfile(err error) error {
	if errors.Is(err, domain.ErrProfileNotFound) {
		return domain.ErrNoProfile
	}
	return err
}
