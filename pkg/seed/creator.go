// Package seed creates batches of test repositories and records their names.
package seed

import (
	"context"
	"fmt"
	"io"

	"github.com/go-logr/logr"

	"ghseed/pkg/github"
)

// Appender records a created repository name
type Appender interface {
	Append(name string) error
}

// Result is the outcome of one repository creation
type Result struct {
	Name       string
	Repository *github.Repository
	Err        error
}

// OK reports whether the repository was created and recorded
func (r Result) OK() bool {
	return r.Err == nil
}

// Creator creates a single repository, echoes its name and appends it to the
// manifest
type Creator struct {
	API      github.RepositoryCreator
	Manifest Appender
	Out      io.Writer
	Logger   logr.Logger
}

// Create creates repo under org. Only a successful create is printed and
// recorded; on failure neither Out nor the manifest is touched.
func (c *Creator) Create(ctx context.Context, org, repo string) Result {
	log := c.Logger.WithValues("organization", org, "repository", repo)
	log.V(1).Info("creating repository")

	created, err := c.API.CreateOrgRepository(ctx, org, repo)
	if err != nil {
		return Result{Name: repo, Err: err}
	}

	if _, err := fmt.Fprintln(c.Out, repo); err != nil {
		return Result{Name: repo, Repository: created, Err: fmt.Errorf("repository %s/%s was created but its name could not be printed: %w", org, repo, err)}
	}

	if err := c.Manifest.Append(repo); err != nil {
		return Result{Name: repo, Repository: created, Err: fmt.Errorf("repository %s/%s was created but not recorded: %w", org, repo, err)}
	}

	log.V(1).Info("created repository", "url", created.HTMLURL)
	return Result{Name: repo, Repository: created}
}
