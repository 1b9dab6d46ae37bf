package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"inventory-manager/feature/inventory/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// menuCmd runs the interactive store inventory session.
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run the interactive inventory session",
	Long: `Start an interactive session against the catalog.

On startup the configured seed file (catalog.seed_file, default inventory.csv)
is imported when it exists, then a menu offers per-record and whole-catalog
operations. The session holds no business logic of its own; every option maps
to one core operation.`,
	RunE: runMenu,
}

func init() {
	RootCmd.AddCommand(menuCmd)
}

func runMenu(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	app, err := setupApp(ctx)
	if err != nil {
		return err
	}

	format, err := resolveDateFormat("", app.cfg.Catalog.DateFormat)
	if err != nil {
		return err
	}

	// Seed the catalog from the working directory on first runs. Re-running
	// is harmless: every row dedupes against the store.
	if seed := app.cfg.Catalog.SeedFile; seed != "" {
		if _, err := os.Stat(seed); err == nil {
			summary, err := app.service.ImportFile(ctx, seed, format)
			if err != nil {
				return fmt.Errorf("seeding from %s: %w", seed, err)
			}
			app.logger.Debug("seed import finished",
				zap.String("source", seed),
				zap.Int("inserted", summary.Inserted),
			)
		}
	}

	session := &menuSession{
		app:    app,
		format: format,
		in:     bufio.NewReader(os.Stdin),
	}
	return session.run(cmd)
}

// menuSession is the interactive dispatcher. It prompts, upper-cases the
// selector and prints results; all record semantics live in the service.
type menuSession struct {
	app    *appContext
	format models.DateFormat
	in     *bufio.Reader
}

func (m *menuSession) run(cmd *cobra.Command) error {
	ctx := cmd.Context()

	fmt.Println("\n******** Store Inventory App ********")

	for {
		fmt.Println("\nPlease select from the following options:")
		fmt.Println("V: Display an item by its id")
		fmt.Println("A: Add an item to the store inventory")
		fmt.Println("L: List all items")
		fmt.Println("B: Backup all inventory items to a csv")
		fmt.Println("Q: Quit the app")

		choice, err := m.prompt("Please select an option: ")
		if err != nil {
			return err
		}

		switch strings.ToUpper(choice) {
		case "V":
			err = m.viewItem(ctx)
		case "A":
			err = m.addItem(ctx)
		case "L":
			err = m.listItems(ctx)
		case "B":
			err = m.backup(ctx)
		case "Q":
			fmt.Println("Exiting...")
			return nil
		default:
			fmt.Println("Please select a valid option")
			continue
		}
		if err != nil {
			return err
		}
	}
}

// prompt reads one trimmed line from the session input.
func (m *menuSession) prompt(label string) (string, error) {
	fmt.Print(label)
	line, err := m.in.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (m *menuSession) viewItem(ctx context.Context) error {
	raw, err := m.prompt("Please enter the id of the item: ")
	if err != nil {
		return err
	}

	id, convErr := strconv.ParseInt(raw, 10, 64)
	if convErr != nil {
		fmt.Println("Please enter a valid id")
		return nil
	}

	item, err := m.app.service.ItemByID(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		fmt.Println("Please enter a valid id")
		return nil
	}
	if err != nil {
		return err
	}

	printItem(item)
	return nil
}

func (m *menuSession) addItem(ctx context.Context) error {
	fmt.Println("\nPlease enter the details of the new item:")
	fmt.Println("For example: Fruitloops, 5, 8, 01/01/2022 (MM/DD/YYYY)")

	name, err := m.prompt("Name: ")
	if err != nil {
		return err
	}
	price, err := m.prompt("Price: $")
	if err != nil {
		return err
	}
	quantity, err := m.prompt("Quantity: ")
	if err != nil {
		return err
	}
	date, err := m.prompt("Date: ")
	if err != nil {
		return err
	}

	item, inserted, err := m.app.service.AddItem(ctx, name, price, quantity, date, m.format)
	if isMalformedInput(err) {
		fmt.Println("Please enter valid data")
		fmt.Println("For example: Fruitloops, 5, 8, 01/01/2022 (MM/DD/YYYY)")
		return nil
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

func (m *menuSession) listItems(ctx context.Context) error {
	items, err := m.app.service.Items(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("The catalog is empty")
		return nil
	}
	for i := range items {
		if i > 0 {
			fmt.Println("---")
		}
		printItem(&items[i])
	}
	return nil
}

func (m *menuSession) backup(ctx context.Context) error {
	target := m.app.cfg.Catalog.BackupFile
	count, err := m.app.service.ExportFile(ctx, target)
	if err != nil {
		return err
	}
	fmt.Printf("Backed up %d record(s) to %s\n", count, target)
	return nil
}
