package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Eppo-exp/Eppo-AI-SDK-demo/internal/cli"
	"github.com/Eppo-exp/Eppo-AI-SDK-demo/internal/client"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a question",
	Long: `Ask a question on behalf of a user. The service assigns the user to a
model variant and answers with that model, or with the fixed fallback
answer when no model variant applies.

Examples:
  qactl ask "Why is the sky blue?" --user alice
  qactl ask "Tell me a joke" --user bob --format json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := args[0]

		effectiveURL, effectiveUser, err := cli.Resolve(baseURL, user)
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}
		if effectiveUser == "" {
			return fmt.Errorf("a user id is required: pass --user, set QACTL_USER or default_user in the config file")
		}

		c := client.NewClient(effectiveURL)

		ctx := context.Background()
		answer, err := c.Ask(ctx, effectiveUser, question)
		if err != nil {
			return fmt.Errorf("failed to ask: %w", err)
		}

		if !quiet {
			return cli.PrintAnswer(answer, cli.OutputFormat(format))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
