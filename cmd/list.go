package cmd

import (
	"fmt"

	"inventory-manager/feature/inventory"

	"github.com/spf13/cobra"
)

// listCmd prints every record in the catalog.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all records in the catalog",
	RunE:  runList,
}

func init() {
	RootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	app, err := setupApp(ctx)
	if err != nil {
		return err
	}

	items, err := app.service.Items(ctx)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Println("The catalog is empty")
		return nil
	}

	fmt.Printf("%-6s %-30s %12s %10s %12s\n", "ID", "NAME", "PRICE", "QUANTITY", "DATE")
	for _, item := range items {
		fmt.Printf("%-6d %-30s %12s %10d %12s\n",
			item.ID,
			item.Name,
			"$"+inventory.FormatPrice(item.PriceCents),
			item.Quantity,
			inventory.FormatDate(item.Date),
		)
	}
	fmt.Printf("%d record(s)\n", len(items))
	return nil
}
