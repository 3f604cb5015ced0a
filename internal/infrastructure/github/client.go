package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/devconnector/devconnector-api/internal/core/domain"
)

const (
	defaultBaseURL = "https://api.github.com"
	defaultTimeout = 5 * time.Second
	repoLimit      = 5
)

// Config holds the GitHub API settings. ClientID and ClientSecret are optional
// and only raise the rate limit.
type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
}

// Client lists a user's public repositories through the GitHub REST API.
type Client struct {
	http         *http.Client
	baseURL      string
	clientID     string
	clientSecret string
}

func NewClient(cfg Config) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		http:         &http.Client{Timeout: timeout},
		baseURL:      base,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
	}
}

// FetchRepos returns the user's five oldest-created public repositories.
// Any non-200 answer is reported as domain.ErrGitHubProfileNotFound.
func (c *Client) FetchRepos(ctx context.Context, username string) ([]domain.Repo, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.ErrGitHubProfileNotFound
	}

	q := url.Values{}
	q.Set("per_page", fmt.Sprint(repoLimit))
	q.Set("sort", "created")
	q.Set("direction", "asc")
	endpoint := fmt.Sprintf("%s/users/%s/repos?%s", c.baseURL, url.PathEscape(username), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("github request: %w", err)
	}
	req.Header.Set("User-Agent", "devconnector-api")
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.clientID != "" && c.clientSecret != "" {
		req.SetBasicAuth(c.clientID, c.clientSecret)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.ErrGitHubProfileNotFound
	}

	repos := []domain.Repo{}
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, fmt.Errorf("github decode: %w", err)
	}
	return repos, nil
}
