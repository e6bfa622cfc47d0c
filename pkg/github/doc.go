// Package github provides the GitHub API operations ghseed needs to seed an
// organization with test repositories.
//
// The package includes:
// - Client, a thin wrapper over go-github authenticated with a personal access token
// - token lookup from the GH_PAT environment variable
// - a structured error taxonomy for API failures
// - type definitions for the repository and rate limit data ghseed reports
package github
