package models

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for the inventory core. Callers classify with errors.Is.
var (
	// ErrMalformedPrice indicates a price string that cannot be normalized to cents.
	ErrMalformedPrice = errors.New("malformed price")
	// ErrMalformedDate indicates a date string that does not match the selected grammar.
	ErrMalformedDate = errors.New("malformed date")
	// ErrMalformedQuantity indicates a quantity that is not a non-negative integer.
	ErrMalformedQuantity = errors.New("malformed quantity")
	// ErrNotFound indicates that no record carries the requested id.
	ErrNotFound = errors.New("item not found")
	// ErrEmptyName indicates an item with an empty natural key.
	ErrEmptyName = errors.New("item name must not be empty")
	// ErrNegativeValue indicates a negative price or quantity. Rejected before persistence.
	ErrNegativeValue = errors.New("price and quantity must not be negative")
)

// DateFormat names one of the accepted date input grammars.
// The grammars are explicit modes rather than auto-detection, so callers
// always know which shape a source is expected to carry.
type DateFormat string

const (
	// DateFormatSlashMDY accepts numeric MM/DD/YYYY dates.
	DateFormatSlashMDY DateFormat = "mdy"
	// DateFormatMonthDMY accepts textual "MonthName DD, YYYY" dates
	// (full English month names, comma after the day optional).
	DateFormatMonthDMY DateFormat = "monthname"
)

// ParseDateFormat maps a flag/config value to a DateFormat.
func ParseDateFormat(s string) (DateFormat, error) {
	switch DateFormat(s) {
	case DateFormatSlashMDY, DateFormatMonthDMY:
		return DateFormat(s), nil
	default:
		return "", fmt.Errorf("unknown date format %q (want %q or %q)",
			s, DateFormatSlashMDY, DateFormatMonthDMY)
	}
}

// Item is the sole persisted entity: one inventory record.
//
// Name is the natural key; the unique index on it is the authoritative
// deduplication mechanism (see Store.InsertIfAbsent). PriceCents carries the
// price in integer minor currency units so repeated import/export cycles
// never accumulate floating-point drift.
type Item struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name       string    `gorm:"column:name;uniqueIndex;not null" json:"name"`
	PriceCents int64     `gorm:"column:price_cents;not null" json:"price_cents"`
	Quantity   int64     `gorm:"column:quantity;not null" json:"quantity"`
	Date       time.Time `gorm:"column:date" json:"date"`
}

// TableName overrides the table name.
func (Item) TableName() string {
	return "items"
}

// ImportSummary reports the outcome of one bulk ingestion run.
type ImportSummary struct {
	// Inserted counts rows that created a new record.
	Inserted int `json:"inserted"`
	// SkippedDuplicate counts rows whose name already existed in the store.
	SkippedDuplicate int `json:"skipped_duplicate"`
	// SkippedMalformed counts rows dropped because a field failed normalization.
	SkippedMalformed int `json:"skipped_malformed"`
}

// Rows returns the total number of rows the summary accounts for.
func (s ImportSummary) Rows() int {
	return s.Inserted + s.SkippedDuplicate + s.SkippedMalformed
}
