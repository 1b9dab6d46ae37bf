package inventory_test

import (
	"context"
	"errors"
	"testing"

	"inventory-manager/feature/inventory"
	"inventory-manager/feature/inventory/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockStore wires the store to a driver-level mock so backing failures
// can be injected.
func setupMockStore(t *testing.T) (*inventory.Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})
	gormDB, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	return inventory.NewStore(gormDB), mock
}

var errDiskGone = errors.New("disk I/O error")

// A failing backing store is fatal to the operation and propagates; it is
// never reported as NotFound or as a duplicate.
func TestGetByID_StorageFailure(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectQuery("SELECT \\* FROM `items`").WillReturnError(errDiskGone)

	_, err := store.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, errDiskGone)
	assert.NotErrorIs(t, err, models.ErrNotFound)
}

func TestListAll_StorageFailure(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectQuery("SELECT \\* FROM `items`").WillReturnError(errDiskGone)

	_, err := store.ListAll(context.Background())
	assert.ErrorIs(t, err, errDiskGone)
}

func TestInsertIfAbsent_StorageFailure(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `items`").WillReturnError(errDiskGone)
	mock.ExpectRollback()

	_, inserted, err := store.InsertIfAbsent(context.Background(), "Fruitloops", 500, 8, testDate())
	assert.ErrorIs(t, err, errDiskGone)
	assert.False(t, inserted)
}
