package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"ghseed/pkg/config"
	"ghseed/pkg/github"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize ghseed configuration",
	Long:  "Create a default configuration file for ghseed",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing configuration file without asking")
}

func runInit(cmd *cobra.Command, _ []string) error {
	var err error
	configPath := configFile
	if configPath == "" {
		configPath, err = config.GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
	}

	out := cmd.OutOrStdout()

	if _, err := os.Stat(configPath); err == nil && !initForce {
		fmt.Fprintf(out, "⚠️  Configuration file already exists at: %s\n", configPath)
		fmt.Fprint(out, "Do you want to overwrite it? (y/N): ")
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n') // Ignore error for user input
		response = strings.TrimSpace(response)
		if response != "y" && response != "Y" {
			fmt.Fprintln(out, "Configuration initialization cancelled.")
			return nil
		}
	}

	defaultConfig := config.Default()
	if configFile != "" {
		err = defaultConfig.SaveConfigToPath(configPath)
	} else {
		err = defaultConfig.SaveConfig()
	}
	if err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Fprintf(out, "✅ Configuration file created at: %s\n", configPath)
	fmt.Fprintln(out, "📝 Please edit the file to set your organization and batch settings.")
	fmt.Fprintf(out, "🔑 The token is read from the %s environment variable, not from this file.\n", github.TokenEnvVar)

	return nil
}
