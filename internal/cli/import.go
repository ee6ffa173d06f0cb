package cli

import (
	"fmt"
	"os"

	"github.com/example/frenchie/internal/catalog"
	"github.com/spf13/cobra"
)

var (
	importOutput string
	importSheet  string
)

var importCmd = &cobra.Command{
	Use:   "import <file.xlsx|file.csv>",
	Short: "Convert a spreadsheet of words into a catalog file",
	Long: `Reads vocabulary from an Excel or CSV file with the columns
ID, French, English, French example, English example, level, category,
gender and collection, and writes a YAML catalog that CATALOG_PATH can
point to.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !catalog.IsSpreadsheet(args[0]) {
			return fmt.Errorf("%s: only .xlsx, .xlsm and .csv files can be imported", args[0])
		}
		cfg := catalog.DefaultImportConfig()
		cfg.FilePath = args[0]
		if importSheet != "" {
			cfg.SheetName = importSheet
		}

		result, err := catalog.ImportItems(cfg)
		if err != nil {
			return err
		}
		if _, err := catalog.New(result.Items); err != nil {
			return fmt.Errorf("imported words do not form a catalog: %w", err)
		}

		data, err := catalog.MarshalYAML(result.Items)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if importOutput == "" {
			out.Write(data)
		} else if err := os.WriteFile(importOutput, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", importOutput, err)
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "Imported %d words (%d rows, %d skipped)\n",
			len(result.Items), result.TotalProcessed, result.Skipped)
		for _, e := range result.Errors {
			fmt.Fprintln(cmd.ErrOrStderr(), e)
		}
		return nil
	},
}

func init() {
	importCmd.Flags().StringVarP(&importOutput, "output", "o", "", "Write the catalog to this file instead of stdout")
	importCmd.Flags().StringVar(&importSheet, "sheet", "", "Sheet to read from an Excel file")
	rootCmd.AddCommand(importCmd)
}
