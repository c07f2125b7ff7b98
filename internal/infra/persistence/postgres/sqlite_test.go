package postgres

import (
	"path/filepath"
	"testing"

	"easyshop/internal/infra/persistence/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway sqlite database with the storefront schema, so
// store behavior that lives in SQL (joins, transactions) runs against a real
// database instead of mocks.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "easyshop.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.ProductModel{},
		&model.CartItemModel{},
		&model.OrderModel{},
		&model.OrderLineItemModel{},
	))

	return db
}
