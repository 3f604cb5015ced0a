package ports

import (
	"context"
	"time"

	"github.com/devconnector/devconnector-api/internal/core/domain"
)

// ExperienceInput holds a new experience entry.
type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          *time.Time
	Current     bool
	Description string
}

// EducationInput holds a new education entry.
type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  string
}

// ProfileService defines use-case operations for profiles.
type ProfileService interface {
	GetMine(ctx context.Context, userID string) (*domain.Profile, error)
	Upsert(ctx context.Context, userID string, fields domain.ProfileUpdate) (*domain.Profile, error)
	List(ctx context.Context) ([]*domain.Profile, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	DeleteAccount(ctx context.Context, userID string) error
	AddExperience(ctx context.Context, userID string, in ExperienceInput) (*domain.Profile, error)
	RemoveExperience(ctx context.Context, userID, experienceID string) (*domain.Profile, error)
	AddEducation(ctx context.Context, userID string, in EducationInput) (*domain.Profile, error)
	RemoveEducation(ctx context.Context, userID, educationID string) (*domain.Profile, error)
	GitHubRepos(ctx context.Context, username string) ([]domain.Repo, error)
}
