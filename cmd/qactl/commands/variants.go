package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Eppo-exp/Eppo-AI-SDK-demo/internal/cli"
	"github.com/Eppo-exp/Eppo-AI-SDK-demo/internal/client"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "Show the variant-to-model routing",
	Long: `Show how each known variant label resolves: to a model identifier or
to the fixed fallback answer.

Examples:
  qactl variants
  qactl variants --format yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		effectiveURL, _, err := cli.Resolve(baseURL, user)
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}

		c := client.NewClient(effectiveURL)

		ctx := context.Background()
		view, err := c.Variants(ctx)
		if err != nil {
			return fmt.Errorf("failed to get variants: %w", err)
		}

		if !quiet {
			return cli.PrintVariants(view, cli.OutputFormat(format))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(variantsCmd)
}
