package database_test

import (
	"errors"
	"testing"

	"inventory-manager/core/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestConnect_SQLite(t *testing.T) {
	db, err := database.Connect(database.Config{
		Driver: database.DriverSQLite,
		Path:   "file:connect_sqlite?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	require.NotNil(t, db)

	// TranslateError must be on: the store's insert-if-absent depends on
	// portable duplicate-key detection.
	require.NoError(t, db.Exec(`CREATE TABLE things (name TEXT UNIQUE)`).Error)
	require.NoError(t, db.Exec(`INSERT INTO things (name) VALUES ('a')`).Error)
	err = db.Exec(`INSERT INTO things (name) VALUES ('a')`).Error
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestConnect_DefaultsToSQLite(t *testing.T) {
	db, err := database.Connect(database.Config{
		Path: "file:connect_default?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", db.Dialector.Name())
}

func TestConnect_UnsupportedDriver(t *testing.T) {
	_, err := database.Connect(database.Config{Driver: "postgres"})
	assert.Error(t, err)
}

func TestTableColumns_SQLite(t *testing.T) {
	db, err := database.Connect(database.Config{
		Driver: database.DriverSQLite,
		Path:   "file:table_columns?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec(`CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT, price_cents INTEGER)`).Error)

	columns, err := database.TableColumns(db, "items")
	require.NoError(t, err)
	require.Len(t, columns, 3)
	assert.Equal(t, "id", columns[0].Field)
	assert.Equal(t, "name", columns[1].Field)
	assert.Equal(t, "price_cents", columns[2].Field)
}
