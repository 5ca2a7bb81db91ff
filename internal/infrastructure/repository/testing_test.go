package repository

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/skhirtladze/pos-api/internal/domain/entity"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory SQLite database and migrates the
// schema. Connections are capped at one so every query sees the same
// in-memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.Unit{},
		&entity.Product{},
		&entity.Receipt{},
		&entity.ReceiptItem{},
	))

	return db
}

// createTestProduct inserts a unit and a product priced at the given amount.
func createTestProduct(t *testing.T, db *gorm.DB, name, barcode, price string) *entity.Product {
	t.Helper()

	unit := &entity.Unit{Name: "unit-for-" + barcode}
	require.NoError(t, db.Create(unit).Error)

	product := &entity.Product{
		UnitID:  unit.ID,
		Name:    name,
		Barcode: barcode,
		Price:   decimal.RequireFromString(price),
	}
	require.NoError(t, db.Create(product).Error)
	return product
}
