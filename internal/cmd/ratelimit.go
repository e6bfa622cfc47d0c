package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rateLimitCmd = &cobra.Command{
	Use:   "rate-limit",
	Short: "Show the remaining GitHub API rate limit for the token",
	Args:  cobra.NoArgs,
	RunE:  runRateLimit,
}

func runRateLimit(cmd *cobra.Command, _ []string) error {
	token, ok, err := requireToken(cmd)
	if err != nil || !ok {
		return err
	}

	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	client, err := newClient(cfg, token)
	if err != nil {
		return err
	}

	limit, err := client.RateLimit(cmd.Context())
	if err != nil {
		printAuthHelp(cmd, err)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "API Rate Limit: %s\n", formatRateLimit(limit))
	return nil
}
