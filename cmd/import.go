package cmd

import (
	"fmt"

	"inventory-manager/feature/inventory/models"

	"github.com/spf13/cobra"
)

var importDateFormat string

// importCmd bulk-ingests a csv file into the catalog.
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Bulk-import inventory records from a csv file",
	Long: `Import records from a delimited file (columns: name, price, quantity, date).

Prices may carry a leading currency symbol and thousands separators. Rows whose
name already exists in the catalog are skipped; rows that fail normalization
are tallied and skipped without aborting the run. Re-importing an unchanged
file is a no-op.

Examples:
  # Default date grammar (MM/DD/YYYY)
  inventory-manager import inventory.csv

  # Textual date grammar ("January 2, 2022")
  inventory-manager import legacy.csv --date-format monthname`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importDateFormat, "date-format", "",
		"date grammar of the source file (mdy or monthname; default from config)")
	RootCmd.AddCommand(importCmd)
}

// resolveDateFormat picks the explicit flag value over the configured default.
func resolveDateFormat(flagValue, configValue string) (models.DateFormat, error) {
	v := flagValue
	if v == "" {
		v = configValue
	}
	return models.ParseDateFormat(v)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	app, err := setupApp(ctx)
	if err != nil {
		return err
	}

	format, err := resolveDateFormat(importDateFormat, app.cfg.Catalog.DateFormat)
	if err != nil {
		return err
	}

	summary, err := app.service.ImportFile(ctx, args[0], format)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("Imported %d record(s): %d new, %d duplicate(s) skipped, %d malformed row(s) skipped\n",
		summary.Rows(), summary.Inserted, summary.SkippedDuplicate, summary.SkippedMalformed)
	return nil
}
