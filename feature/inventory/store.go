package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inventory-manager/feature/inventory/models"

	"gorm.io/gorm"
)

// Store owns the durable item collection. All access to the backing database
// goes through it; the importer and exporter never touch gorm directly.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store on an open gorm connection.
// The connection must be opened with TranslateError enabled so unique
// constraint violations surface as gorm.ErrDuplicatedKey.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying gorm connection for schema diagnostics.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Migrate creates or updates the items table.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&models.Item{}); err != nil {
		return fmt.Errorf("migrating items table: %w", err)
	}
	return nil
}

// InsertIfAbsent inserts a new item unless one with the same name exists.
//
// The existence check is not a prior read: the insert is attempted directly
// and the unique index on name is the authoritative deduplication. A
// constraint violation means the name is taken, in which case the existing
// record is returned with inserted=false and no error. This keeps the
// check-and-insert atomic even if callers ever become concurrent.
//
// Validation failures (empty name, negative values) are rejected before any
// statement reaches the database.
func (s *Store) InsertIfAbsent(ctx context.Context, name string, priceCents, quantity int64, date time.Time) (*models.Item, bool, error) {
	if name == "" {
		return nil, false, models.ErrEmptyName
	}
	if priceCents < 0 || quantity < 0 {
		return nil, false, models.ErrNegativeValue
	}

	item := models.Item{
		Name:       name,
		PriceCents: priceCents,
		Quantity:   quantity,
		Date:       date,
	}

	err := s.db.WithContext(ctx).Create(&item).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		var existing models.Item
		if err := s.db.WithContext(ctx).Where("name = ?", name).First(&existing).Error; err != nil {
			return nil, false, fmt.Errorf("fetching existing item %q: %w", name, err)
		}
		return &existing, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("inserting item %q: %w", name, err)
	}

	return &item, true, nil
}

// GetByID returns the item with the given id, or models.ErrNotFound.
func (s *Store) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	var item models.Item
	err := s.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: id %d", models.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("getting item %d: %w", id, err)
	}
	return &item, nil
}

// ListAll returns every item ordered by id ascending. The ordering is stable
// across calls, which the exporter relies on for deterministic output.
func (s *Store) ListAll(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	return items, nil
}

// Count returns the number of items in the store.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Item{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("counting items: %w", err)
	}
	return n, nil
}
