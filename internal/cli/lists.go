package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var forgottenCmd = &cobra.Command{
	Use:   "forgotten",
	Short: "List forgotten cards, most forgotten first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		ctx, cancel := commandContext()
		defer cancel()

		list := a.Service.ListForgotten(a.Service.LoadProgress(ctx))
		out := cmd.OutOrStdout()
		if len(list) == 0 {
			fmt.Fprintln(out, "No forgotten words.")
			return nil
		}
		for _, f := range list {
			fmt.Fprintf(out, "%3dx  %-24s %s\n", f.ForgotCount, f.Item.Term, f.Item.Translation)
		}
		return nil
	},
}

var familiarCmd = &cobra.Command{
	Use:   "familiar",
	Short: "List cards marked very familiar",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		ctx, cancel := commandContext()
		defer cancel()

		list := a.Service.ListFamiliar(a.Service.LoadProgress(ctx))
		if len(list) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No familiar words.")
			return nil
		}
		printItems(cmd.OutOrStdout(), list)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(forgottenCmd)
	rootCmd.AddCommand(familiarCmd)
}
