package github

import "context"

// RepositoryCreator creates repositories under an organization
type RepositoryCreator interface {
	CreateOrgRepository(ctx context.Context, org, name string) (*Repository, error)
}

// APIClient defines the GitHub API operations used by ghseed
type APIClient interface {
	RepositoryCreator

	GetRepository(ctx context.Context, owner, name string) (*Repository, error)
	RepositoryExists(ctx context.Context, owner, name string) (bool, error)
	RateLimit(ctx context.Context) (*RateLimit, error)
}

var _ APIClient = (*Client)(nil)
