package cli

import (
	"fmt"

	"github.com/example/frenchie/internal/learning"
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review <id> <remembered|forgot|familiar|restore>",
	Short: "Record the outcome of reviewing one card",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		outcome, err := learning.ParseOutcome(args[1])
		if err != nil {
			return err
		}
		id := args[0]
		if !a.Catalog.Contains(id) {
			return fmt.Errorf("unknown card %q", id)
		}

		ctx, cancel := commandContext()
		defer cancel()

		progress := a.Service.Review(ctx, a.Service.LoadProgress(ctx), id, outcome)
		state := progress[id]
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s, next review %s\n",
			id, outcome, state.NextReviewDueAt.Local().Format("2006-01-02 15:04"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reviewCmd)
}
