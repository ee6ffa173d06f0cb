package cli

import (
	"fmt"

	"github.com/example/frenchie/internal/streak"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics and the current streak",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		ctx, cancel := commandContext()
		defer cancel()

		svc := a.Service
		progress := svc.LoadProgress(ctx)
		stats := svc.LearningStats(progress)
		state := svc.LoadStreak(ctx)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Words:      %d\n", stats.Total)
		fmt.Fprintf(out, "Learned:    %d (%d%%)\n", stats.Learned, stats.MasteryPercentage)
		fmt.Fprintf(out, "Mastered:   %d\n", stats.Mastered)
		fmt.Fprintf(out, "Due now:    %d\n", stats.Due)
		fmt.Fprintf(out, "New:        %d\n", stats.New)
		fmt.Fprintf(out, "Streak:     %d day(s), best %d\n", streak.Current(state, svc.Today()), state.LongestStreak)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
