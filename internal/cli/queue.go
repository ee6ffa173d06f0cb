package cli

import (
	"fmt"
	"io"

	"github.com/example/frenchie/pkg/models"
	"github.com/spf13/cobra"
)

var queueSize int

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "List the cards of the next session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		ctx, cancel := commandContext()
		defer cancel()

		size := queueSize
		if size <= 0 {
			size = a.Service.QueueSize()
		}
		cards := a.Service.LearningQueue(a.Service.LoadProgress(ctx), size)
		if len(cards) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing to review right now.")
			return nil
		}
		printItems(cmd.OutOrStdout(), cards)
		return nil
	},
}

// printItems prints a table of vocabulary items
func printItems(out io.Writer, items []models.VocabularyItem) {
	fmt.Fprintf(out, "%-12s %-4s %-24s %s\n", "ID", "LVL", "FRENCH", "ENGLISH")
	for _, item := range items {
		fmt.Fprintf(out, "%-12s %-4s %-24s %s\n", item.ID, item.Level, item.Term, item.Translation)
	}
}

func init() {
	queueCmd.Flags().IntVarP(&queueSize, "size", "n", 0, "Number of cards (default from config)")
	rootCmd.AddCommand(queueCmd)
}
