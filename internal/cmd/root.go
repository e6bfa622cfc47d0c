package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	ilogr "ghseed/internal/logr"
	"ghseed/pkg/config"
	"ghseed/pkg/github"
)

var (
	configFile   string
	envFile      string
	organization string
	manifestPath string
	apiURL       string
	timeout      time.Duration
	logConfig    ilogr.Config
)

var rootCmd = &cobra.Command{
	Use:   "ghseed",
	Short: "Seed a GitHub organization with test repositories",
	Long: `ghseed creates throwaway repositories in a GitHub organization for exercising
tools that operate on many repositories. Each repository gets a random word_word
name; every created name is printed and appended to a manifest file
(include-repos.txt by default) that later runs and other tools read back.

Authentication uses a personal access token from the GH_PAT environment variable.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on error
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

// PrintError prints err with a red Error: prefix
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %s\n", color.HiRedString("Error:"), err.Error())
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Configuration file (default $GHSEED_CONFIG or ~/.ghseed/config.yaml)")
	flags.StringVar(&envFile, "env-file", "", "Load environment variables such as GH_PAT from this .env file")
	flags.StringVar(&organization, "org", "", "Organization that owns the test repositories (default from config, else ts-source)")
	flags.StringVar(&manifestPath, "manifest", "", "Manifest file of created repository names (default include-repos.txt)")
	flags.StringVar(&apiURL, "api-url", "", "GitHub API base URL (default https://api.github.com/)")
	flags.DurationVar(&timeout, "timeout", 0, "Timeout for each API request, 0 for none")
	ilogr.LoadConfigFromFlags(flags, &logConfig)

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(rateLimitCmd)
	rootCmd.AddCommand(initCmd)
}

// loadSettings loads the configuration file and applies the persistent flags
// on top of it.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configFile != "" {
		cfg, err = config.LoadConfigFromPath(configFile)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load ghseed config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("org") {
		cfg.GitHub.Organization = organization
	}
	if flags.Changed("manifest") {
		cfg.Seed.Manifest = manifestPath
	}
	if flags.Changed("api-url") {
		cfg.GitHub.APIURL = apiURL
	}

	return cfg, nil
}

// newLogger builds the logger from the logging flags
func newLogger(cmd *cobra.Command) (logr.Logger, error) {
	return ilogr.New(&logConfig, cmd.ErrOrStderr())
}

// newClient builds an authenticated API client
func newClient(cfg *config.Config, token string) (*github.Client, error) {
	opts := []github.ClientOption{github.WithTimeout(timeout)}
	if cfg.GitHub.APIURL != "" {
		opts = append(opts, github.WithBaseURL(cfg.GitHub.APIURL))
	}
	return github.NewClient(token, opts...)
}
