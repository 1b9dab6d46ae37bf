package cmd

import (
	"fmt"

	"inventory-manager/core/database"
	"inventory-manager/feature/inventory/models"

	"github.com/spf13/cobra"
)

// statusCmd reports catalog health: driver, schema and record count.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show catalog status and schema",
	RunE:  runStatus,
}

func init() {
	RootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	app, err := setupApp(ctx)
	if err != nil {
		return err
	}

	count, err := app.service.ItemCount(ctx)
	if err != nil {
		return err
	}

	columns, err := database.TableColumns(app.service.Store().DB(), models.Item{}.TableName())
	if err != nil {
		return err
	}

	fmt.Println("--- Catalog Status ---")
	fmt.Printf("Driver:   %s\n", app.cfg.Database.Driver)
	if app.cfg.Database.Driver == database.DriverSQLite {
		fmt.Printf("Path:     %s\n", app.cfg.Database.Path)
	}
	fmt.Printf("Records:  %d\n", count)
	fmt.Println("Schema:")
	for _, col := range columns {
		fmt.Printf("  %-12s %s\n", col.Field, col.Type)
	}
	return nil
}
