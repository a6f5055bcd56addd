package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	baseURL string
	user    string
	format  string
	quiet   bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "qactl",
	Short: "CLI tool for the A/B-tested Q&A service",
	Long: `qactl is a command-line client for the Q&A service.

It asks questions on behalf of a user, inspects the variant-to-model
routing and checks service health.

Examples:
  qactl ask "Why is the sky blue?" --user alice
  qactl variants --format json
  qactl health`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags available to all commands
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Base URL of the Q&A service")
	rootCmd.PersistentFlags().StringVar(&user, "user", "", "User identifier for variant assignment")
	rootCmd.PersistentFlags().StringVar(&format, "format", "table", "Output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "Suppress output")
}
