package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ghseed/pkg/manifest"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that every repository in the manifest exists",
	Long: `Look up every repository recorded in the manifest and print one line per
repository:

  org/name,exists
  org/name,missing

The command fails if any repository is missing.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, _ []string) error {
	token, ok, err := requireToken(cmd)
	if err != nil || !ok {
		return err
	}

	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}

	client, err := newClient(cfg, token)
	if err != nil {
		return err
	}

	repos, err := manifest.New(cfg.Seed.Manifest).Read()
	if err != nil {
		return err
	}

	org := cfg.GitHub.Organization
	missing := 0
	for _, repo := range repos {
		exists, err := client.RepositoryExists(cmd.Context(), org, repo)
		if err != nil {
			printAuthHelp(cmd, err)
			return fmt.Errorf("failed to verify %s/%s: %w", org, repo, err)
		}

		status := "exists"
		if !exists {
			status = "missing"
			missing++
		}
		logger.V(1).Info("verified repository", "repository", org+"/"+repo, "status", status)
		fmt.Fprintf(cmd.OutOrStdout(), "%s/%s,%s\n", org, repo, status)
	}

	if missing > 0 {
		return fmt.Errorf("%d of %d repositories in %s are missing", missing, len(repos), cfg.Seed.Manifest)
	}
	return nil
}
