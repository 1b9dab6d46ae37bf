package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"inventory-manager/feature/inventory"
	"inventory-manager/feature/inventory/models"

	"github.com/spf13/cobra"
)

// viewCmd displays a single record by id.
var viewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Display a record by its id",
	Args:  cobra.ExactArgs(1),
	RunE:  runView,
}

func init() {
	RootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("id must be an integer, got %q", args[0])
	}

	app, err := setupApp(ctx)
	if err != nil {
		return err
	}

	item, err := app.service.ItemByID(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		fmt.Printf("No record with id %d\n", id)
		return nil
	}
	if err != nil {
		return err
	}

	printItem(item)
	return nil
}

// printItem renders one record the way the interactive menu does.
func printItem(item *models.Item) {
	fmt.Printf("ID:       %d\n", item.ID)
	fmt.Printf("Name:     %s\n", item.Name)
	fmt.Printf("Price:    $%s\n", inventory.FormatPrice(item.PriceCents))
	fmt.Printf("Quantity: %d\n", item.Quantity)
	fmt.Printf("Date:     %s\n", inventory.FormatDate(item.Date))
}
