package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetConfirm bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all review progress (the streak is kept)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetConfirm {
			return fmt.Errorf("refusing to reset without --yes")
		}
		a, err := requireApp()
		if err != nil {
			return err
		}
		ctx, cancel := commandContext()
		defer cancel()

		if err := a.Service.ResetProgress(ctx); err != nil {
			return fmt.Errorf("resetting progress: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Progress reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetConfirm, "yes", false, "Confirm the reset")
	rootCmd.AddCommand(resetCmd)
}
