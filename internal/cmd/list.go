package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ghseed/pkg/manifest"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the repositories recorded in the manifest",
	Long: `Print every repository recorded in the manifest as org/name, sorted, one per
line. Blank lines and lines starting with # are ignored, so the manifest can be
edited by hand to exclude repositories.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	repos, err := manifest.New(cfg.Seed.Manifest).Read()
	if err != nil {
		return err
	}

	for _, repo := range manifest.Qualified(cfg.GitHub.Organization, repos) {
		fmt.Fprintln(cmd.OutOrStdout(), repo)
	}
	return nil
}
