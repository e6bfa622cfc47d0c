package seed

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"ghseed/pkg/github"
	"ghseed/pkg/names"
)

const (
	DefaultOrganization = "ts-source"
	DefaultCount        = 1
)

// Config describes one batch run
type Config struct {
	Organization string
	Count        int
}

// Validate validates the batch configuration
func (c Config) Validate() error {
	var errs github.ValidationErrors
	if c.Organization == "" {
		errs.Add("organization", "", "is required")
	}
	if c.Count < 1 {
		errs.Add("count", fmt.Sprint(c.Count), "must be at least 1")
	}
	if errs.HasErrors() {
		return errs
	}
	return nil
}

// NameGenerator produces repository names
type NameGenerator interface {
	Next() (string, error)
}

var _ NameGenerator = (*names.Generator)(nil)

// RepositoryCreator creates one repository and reports the outcome
type RepositoryCreator interface {
	Create(ctx context.Context, org, repo string) Result
}

var _ RepositoryCreator = (*Creator)(nil)

// Report summarizes a batch run
type Report struct {
	Requested int
	Created   []string
	Failed    *Result
}

// Attempted is the number of create calls made
func (r *Report) Attempted() int {
	n := len(r.Created)
	if r.Failed != nil {
		n++
	}
	return n
}

// BatchError is returned when a repository in the batch fails. The remaining
// repositories are not attempted.
type BatchError struct {
	// Index is the 1-based position of the failed repository in the batch
	Index int
	Total int
	Name  string
	Err   error
}

// Error implements the error interface
func (e *BatchError) Error() string {
	return fmt.Sprintf("repository %d of %d (%s) failed: %v", e.Index, e.Total, e.Name, e.Err)
}

// Unwrap returns the underlying error
func (e *BatchError) Unwrap() error {
	return e.Err
}

// Driver runs a batch of repository creations, one at a time
type Driver struct {
	Config  Config
	Names   NameGenerator
	Creator RepositoryCreator
	Logger  logr.Logger
}

// Run generates Config.Count names and creates them in order, stopping at the
// first failure.
func (d *Driver) Run(ctx context.Context) (*Report, error) {
	if err := d.Config.Validate(); err != nil {
		return nil, err
	}

	report := &Report{Requested: d.Config.Count}
	log := d.Logger.WithValues("organization", d.Config.Organization, "count", d.Config.Count)
	log.Info("starting batch")

	for i := 1; i <= d.Config.Count; i++ {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("batch stopped before repository %d of %d: %w", i, d.Config.Count, err)
		}

		name, err := d.Names.Next()
		if err != nil {
			return report, fmt.Errorf("failed to generate name for repository %d of %d: %w", i, d.Config.Count, err)
		}

		result := d.Creator.Create(ctx, d.Config.Organization, name)
		if !result.OK() {
			report.Failed = &result
			log.Error(result.Err, "repository creation failed", "index", i, "repository", name)
			return report, &BatchError{Index: i, Total: d.Config.Count, Name: name, Err: result.Err}
		}

		report.Created = append(report.Created, result.Name)
	}

	log.Info("batch complete", "created", len(report.Created))
	return report, nil
}
