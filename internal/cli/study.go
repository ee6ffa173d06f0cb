package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/example/frenchie/internal/learning"
	"github.com/spf13/cobra"
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Review the next session's cards interactively",
	Long: `Shows each card of the session and reads the answer from standard input:

  r  remembered
  f  forgot
  v  very familiar (retire the card)
  q  quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		in := bufio.NewScanner(cmd.InOrStdin())

		ctx, cancel := commandContext()
		sess := a.Service.StartSession(ctx)
		cancel()

		for {
			card, ok := sess.Current()
			if !ok {
				break
			}
			fmt.Fprintf(out, "\n%s  (%d left)\n[r]emembered [f]orgot [v]ery familiar [q]uit > ", card.Term, sess.Remaining())
			if !in.Scan() {
				break
			}
			answer := strings.TrimSpace(in.Text())
			if answer == "q" {
				break
			}
			outcome, err := learning.ParseOutcome(answer)
			if err != nil || outcome == learning.Restore {
				fmt.Fprintln(out, "Please answer r, f, v or q.")
				continue
			}
			fmt.Fprintf(out, "%s - %s\n", card.Term, card.Translation)
			if card.ExampleTerm != "" {
				fmt.Fprintf(out, "  %s\n  %s\n", card.ExampleTerm, card.ExampleTranslation)
			}
			ctx, cancel := commandContext()
			reached := sess.Answer(ctx, outcome)
			cancel()
			if reached {
				fmt.Fprintf(out, "Daily goal reached! Streak: %d day(s)\n", sess.Streak.CurrentStreak)
			}
		}

		fmt.Fprintf(out, "\nSession over: %d remembered today.\n", sess.Goal().Count())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(studyCmd)
}
