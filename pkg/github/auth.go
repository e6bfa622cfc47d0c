package github

import (
	"context"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2"
)

// TokenEnvVar is the environment variable holding the personal access token
const TokenEnvVar = "GH_PAT"

// tokenType is sent as the Authorization scheme, i.e. "Authorization: token <pat>"
const tokenType = "token"

// MissingTokenMessage is the message printed when no token is configured
const MissingTokenMessage = "Token is empty. Please set the GH_PAT environment variable."

// GetToken returns the trimmed token from GH_PAT and whether one was set.
func GetToken() (string, bool) {
	token := strings.TrimSpace(os.Getenv(TokenEnvVar))
	return token, token != ""
}

// newTokenHTTPClient returns an HTTP client that authenticates every request
// with the given token. base is used as the underlying transport client when
// non-nil.
func newTokenHTTPClient(token string, base *http.Client) *http.Client {
	ctx := context.Background()
	if base != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, base)
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token, TokenType: tokenType},
	)
	tc := oauth2.NewClient(ctx, ts)
	if base != nil {
		tc.Timeout = base.Timeout
	}
	return tc
}

// GetAuthInstructions returns instructions for setting up GitHub authentication
func GetAuthInstructions() string {
	return `GitHub authentication is required. Set a personal access token in the
GH_PAT environment variable:

   export GH_PAT="your_personal_access_token"

or put it in a .env file and pass --env-file:

   GH_PAT=your_personal_access_token

The token must have the 'repo' scope and permission to create repositories in
the target organization.`
}
