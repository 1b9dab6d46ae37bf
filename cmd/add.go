package cmd

import (
	"errors"
	"fmt"

	"inventory-manager/feature/inventory/models"

	"github.com/spf13/cobra"
)

var (
	addName       string
	addPrice      string
	addQuantity   string
	addDate       string
	addDateFormat string
)

// addCmd inserts a single record from the command line.
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a single record to the catalog",
	Long: `Add one inventory record. Price and date are accepted in the same raw
shapes as import sources and normalized at the boundary.

Example:
  inventory-manager add --name Fruitloops --price '$5.00' --quantity 8 --date 01/01/2022`,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "item name (the unique key)")
	addCmd.Flags().StringVar(&addPrice, "price", "", "item price, e.g. '$1,299.99'")
	addCmd.Flags().StringVar(&addQuantity, "quantity", "", "count on hand")
	addCmd.Flags().StringVar(&addDate, "date", "", "entry date, e.g. 01/01/2022")
	addCmd.Flags().StringVar(&addDateFormat, "date-format", "",
		"date grammar (mdy or monthname; default from config)")
	_ = addCmd.MarkFlagRequired("name")
	_ = addCmd.MarkFlagRequired("price")
	_ = addCmd.MarkFlagRequired("quantity")
	_ = addCmd.MarkFlagRequired("date")
	RootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	app, err := setupApp(ctx)
	if err != nil {
		return err
	}

	format, err := resolveDateFormat(addDateFormat, app.cfg.Catalog.DateFormat)
	if err != nil {
		return err
	}

	item, inserted, err := app.service.AddItem(ctx, addName, addPrice, addQuantity, addDate, format)
	if isMalformedInput(err) {
		return fmt.Errorf("%w\nFor example: --name Fruitloops --price 5 --quantity 8 --date 01/01/2022 (MM/DD/YYYY)", err)
	}
	if err != nil {
		return err
	}

	if !inserted {
		fmt.Printf("%q already exists (id %d); nothing added\n", item.Name, item.ID)
		return nil
	}
	fmt.Printf("Added %q with id %d\n", item.Name, item.ID)
	return nil
}

// isMalformedInput reports whether err is a row-level input defect the user
// can correct, as opposed to a storage failure.
func isMalformedInput(err error) bool {
	return errors.Is(err, models.ErrMalformedPrice) ||
		errors.Is(err, models.ErrMalformedDate) ||
		errors.Is(err, models.ErrMalformedQuantity) ||
		errors.Is(err, models.ErrEmptyName) ||
		errors.Is(err, models.ErrNegativeValue)
}
