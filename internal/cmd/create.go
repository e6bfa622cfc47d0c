package cmd

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"ghseed/pkg/github"
	"ghseed/pkg/manifest"
	"ghseed/pkg/names"
	"ghseed/pkg/seed"
)

var (
	createCount      int
	createWords      []string
	createRateReport bool
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a batch of test repositories",
	Long: `Create test repositories in the organization, one at a time.

Each repository is named from random words joined by an underscore (word_word)
and created with an initial commit. After each successful create the name is
printed on its own line and appended to the manifest file.

The batch stops at the first failure: later repositories are not attempted and
the manifest only holds the names created before the failure. Failed creates
are not retried.

Examples:
  # Create one repository in the default organization
  GH_PAT=... ghseed create

  # Create ten repositories in another organization
  ghseed create --org my-test-org --count 10

  # Use fixed words instead of random ones
  ghseed create --words alpha,beta`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().IntVar(&createCount, "count", 0, "Number of repositories to create (default from config, else 1)")
	createCmd.Flags().StringSliceVar(&createWords, "words", nil, "Draw name words from this list in order instead of random words")
	createCmd.Flags().BoolVar(&createRateReport, "rate-limit", false, "Report the API rate limit before and after the batch")
}

func runCreate(cmd *cobra.Command, _ []string) error {
	token, ok, err := requireToken(cmd)
	if err != nil || !ok {
		return err
	}

	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("count") {
		cfg.Seed.Count = createCount
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}

	client, err := newClient(cfg, token)
	if err != nil {
		return err
	}

	var src names.WordSource = names.PetnameSource{}
	if len(createWords) > 0 {
		src = names.NewStaticSource(createWords...)
	}

	driver := &seed.Driver{
		Config: seed.Config{
			Organization: cfg.GitHub.Organization,
			Count:        cfg.Seed.Count,
		},
		Names: &names.Generator{
			Source:    src,
			Words:     cfg.Seed.Words,
			Separator: cfg.Seed.Separator,
		},
		Creator: &seed.Creator{
			API:      client,
			Manifest: manifest.New(cfg.Seed.Manifest),
			Out:      cmd.OutOrStdout(),
			Logger:   logger,
		},
		Logger: logger,
	}

	ctx := cmd.Context()
	if createRateReport {
		reportRateLimit(ctx, cmd, client, logger, "beginning of run")
	}

	report, err := driver.Run(ctx)
	if report != nil {
		logger.Info("batch summary",
			"requested", report.Requested,
			"attempted", report.Attempted(),
			"created", len(report.Created))
	}
	printAuthHelp(cmd, err)

	if createRateReport {
		reportRateLimit(ctx, cmd, client, logger, "end of run")
	}
	return err
}

// reportRateLimit prints the remaining API budget. Failures are logged and
// otherwise ignored so they never change the outcome of a batch.
func reportRateLimit(ctx context.Context, cmd *cobra.Command, client github.APIClient, logger logr.Logger, label string) {
	limit, err := client.RateLimit(ctx)
	if err != nil {
		logger.Error(err, "failed to read rate limit", "when", label)
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "::: API Rate Limit: %s: %s\n", label, formatRateLimit(limit))
}

func formatRateLimit(limit *github.RateLimit) string {
	return fmt.Sprintf("%d of %d requests remaining. Resets at: %s",
		limit.Remaining, limit.Limit, limit.ResetsAt.Local().Format("2006-01-02 15:04:05 MST"))
}
