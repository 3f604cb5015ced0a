package ports

import (
	"context"

	"github.com/devconnector/devconnector-api/internal/core/domain"
)

// RepoFetcher lists a GitHub user's latest public repositories.
// Returns domain.ErrGitHubProfileNotFound when the provider has nothing for username.
type RepoFetcher interface {
	FetchRepos(ctx context.Context, username string) ([]domain.Repo, error)
}
