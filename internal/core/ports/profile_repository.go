package ports

import (
	"context"

	"github.com/devconnector/devconnector-api/internal/core/domain"
)

// ProfileMutation edits a profile in place. Returning an error aborts the write.
type ProfileMutation func(p *domain.Profile) error

// ProfileRepository defines persistence for profiles. Read methods return the
// profile with its owner summary populated.
type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	List(ctx context.Context) ([]*domain.Profile, error)
	// Create returns domain.ErrProfileExists if the user already has a profile.
	Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	// Update applies mutate to the stored profile and persists the result
	// without losing concurrent writes to the same profile.
	Update(ctx context.Context, userID string, mutate ProfileMutation) (*domain.Profile, error)
	DeleteByUserID(ctx context.Context, userID string) error

	// AddExperience and AddEducation put the entry at the head of its list.
	AddExperience(ctx context.Context, userID string, e domain.Experience) (*domain.Profile, error)
	// RemoveExperience returns domain.ErrExperienceNotFound for an unknown id.
	RemoveExperience(ctx context.Context, userID, experienceID string) (*domain.Profile, error)
	AddEducation(ctx context.Context, userID string, e domain.Education) (*domain.Profile, error)
	// RemoveEducation returns domain.ErrEducationNotFound for an unknown id.
	RemoveEducation(ctx context.Context, userID, educationID string) (*domain.Profile, error)
}
