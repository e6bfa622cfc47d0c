package cmd

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"ghseed/pkg/github"
)

// requireToken returns the GH_PAT token. When it is missing the standard
// message is printed and ok is false; callers then return without touching
// the network or the filesystem.
func requireToken(cmd *cobra.Command) (token string, ok bool, err error) {
	if envFile != "" {
		// Variables already set in the environment win over the file.
		if err := godotenv.Load(envFile); err != nil {
			return "", false, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	token, ok = github.GetToken()
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), github.MissingTokenMessage)
		return "", false, nil
	}
	return token, true, nil
}

// printAuthHelp explains how to set up the token when err is an
// authentication failure.
func printAuthHelp(cmd *cobra.Command, err error) {
	var ghErr *github.Error
	if errors.As(err, &ghErr) && ghErr.Type == github.ErrorTypeAuth {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", github.GetAuthInstructions())
	}
}
