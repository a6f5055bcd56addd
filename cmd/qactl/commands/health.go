package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Eppo-exp/Eppo-AI-SDK-demo/internal/cli"
	"github.com/Eppo-exp/Eppo-AI-SDK-demo/internal/client"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check service health",
	Long: `Check that the Q&A service is up.

Example:
  qactl health`,
	RunE: func(cmd *cobra.Command, args []string) error {
		effectiveURL, _, err := cli.Resolve(baseURL, user)
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}

		c := client.NewClient(effectiveURL)

		ctx := context.Background()
		if err := c.Health(ctx); err != nil {
			return fmt.Errorf("service is unhealthy: %w", err)
		}

		if !quiet {
			fmt.Println("ok")
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
