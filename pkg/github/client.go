package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v66/github"
)

// Client implements the APIClient interface using the GitHub REST API
type Client struct {
	client *github.Client
}

// ClientOption configures a Client
type ClientOption func(*clientOptions)

type clientOptions struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// WithBaseURL points the client at a different API root, e.g. a GitHub
// Enterprise server or a test server.
func WithBaseURL(baseURL string) ClientOption {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithHTTPClient sets the underlying HTTP client used for transport.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(o *clientOptions) {
		o.httpClient = hc
	}
}

// WithTimeout bounds every request. Zero means no timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(o *clientOptions) {
		o.timeout = d
	}
}

// NewClient creates a new GitHub API client with the provided token
func NewClient(token string, opts ...ClientOption) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("GitHub token cannot be empty")
	}

	var o clientOptions
	for _, opt := range opts {
		opt(&o)
	}

	base := o.httpClient
	if o.timeout > 0 {
		if base == nil {
			base = &http.Client{}
		} else {
			copied := *base
			base = &copied
		}
		base.Timeout = o.timeout
	}

	client := github.NewClient(newTokenHTTPClient(token, base))

	if o.baseURL != "" {
		baseURL := o.baseURL
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid API URL %q: %w", o.baseURL, err)
		}
		client.BaseURL = u
	}

	return &Client{client: client}, nil
}

// CreateOrgRepository creates an auto-initialized repository under org.
// The call is never retried: a repeated create of the same name fails.
func (c *Client) CreateOrgRepository(ctx context.Context, org, name string) (*Repository, error) {
	repo := &github.Repository{
		Name:     github.String(name),
		AutoInit: github.Bool(true),
	}

	created, _, err := c.client.Repositories.Create(ctx, org, repo)
	if err != nil {
		return nil, WrapGitHubError(err, fmt.Sprintf("repository %s in organization %s", name, org))
	}

	return convertGitHubRepository(created), nil
}

// GetRepository retrieves a repository by owner and name
func (c *Client) GetRepository(ctx context.Context, owner, name string) (*Repository, error) {
	repo, _, err := c.client.Repositories.Get(ctx, owner, name)
	if err != nil {
		return nil, WrapGitHubError(err, fmt.Sprintf("repository %s/%s", owner, name))
	}

	return convertGitHubRepository(repo), nil
}

// RepositoryExists reports whether owner/name exists and is visible to the token
func (c *Client) RepositoryExists(ctx context.Context, owner, name string) (bool, error) {
	_, err := c.GetRepository(ctx, owner, name)
	if err == nil {
		return true, nil
	}
	if IsNotFound(err) {
		return false, nil
	}
	return false, err
}

// RateLimit returns the core REST API rate limit for the token
func (c *Client) RateLimit(ctx context.Context) (*RateLimit, error) {
	limits, _, err := c.client.RateLimit.Get(ctx)
	if err != nil {
		return nil, WrapGitHubError(err, "rate limit")
	}

	core := limits.GetCore()
	if core == nil {
		return nil, NewError(ErrorTypeUnknown, "response did not include a core rate limit", nil)
	}

	return &RateLimit{
		Limit:     core.Limit,
		Remaining: core.Remaining,
		ResetsAt:  core.Reset.Time,
	}, nil
}

// convertGitHubRepository converts a GitHub API repository to our internal type
func convertGitHubRepository(repo *github.Repository) *Repository {
	return &Repository{
		ID:            repo.GetID(),
		Name:          repo.GetName(),
		FullName:      repo.GetFullName(),
		Private:       repo.GetPrivate(),
		DefaultBranch: repo.GetDefaultBranch(),
		HTMLURL:       repo.GetHTMLURL(),
		CreatedAt:     repo.GetCreatedAt().Time,
	}
}
