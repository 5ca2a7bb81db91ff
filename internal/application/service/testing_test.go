package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/skhirtladze/pos-api/internal/domain/entity"
	"github.com/skhirtladze/pos-api/internal/domain/repository"
	infraRepo "github.com/skhirtladze/pos-api/internal/infrastructure/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db          *gorm.DB
	receiptRepo repository.ReceiptRepository
	productRepo repository.ProductRepository
	unitRepo    repository.UnitRepository
	salesRepo   repository.SalesRepository
}

func setupTestEnv(t *testing.T) *testEnv {
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

	return &testEnv{
		db:          db,
		receiptRepo: infraRepo.NewReceiptRepository(db),
		productRepo: infraRepo.NewProductRepository(db),
		unitRepo:    infraRepo.NewUnitRepository(db),
		salesRepo:   infraRepo.NewSalesRepository(db),
	}
}

func (e *testEnv) createProduct(t *testing.T, name, barcode, price string) *entity.Product {
	t.Helper()

	unit := &entity.Unit{Name: "unit-for-" + barcode}
	require.NoError(t, e.db.Create(unit).Error)

	product := &entity.Product{
		UnitID:  unit.ID,
		Name:    name,
		Barcode: barcode,
		Price:   decimal.RequireFromString(price),
	}
	require.NoError(t, e.db.Create(product).Error)
	return product
}

// recordingReceiptRepo counts store calls so tests can assert that invalid
// input is rejected before any store interaction.
type recordingReceiptRepo struct {
	calls int
}

func (r *recordingReceiptRepo) Open(ctx context.Context) (*entity.Receipt, error) {
	r.calls++
	return &entity.Receipt{ID: uuid.New(), Status: true}, nil
}

func (r *recordingReceiptRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	r.calls++
	return nil, nil
}

func (r *recordingReceiptRepo) GetStatus(ctx context.Context, id uuid.UUID) (bool, error) {
	r.calls++
	return true, nil
}

func (r *recordingReceiptRepo) Close(ctx context.Context, id uuid.UUID) error {
	r.calls++
	return nil
}

func (r *recordingReceiptRepo) AddItem(ctx context.Context, receiptID, productID uuid.UUID, quantity int, unitPrice decimal.Decimal) (*entity.Receipt, error) {
	r.calls++
	return &entity.Receipt{ID: receiptID, Status: true}, nil
}

func (r *recordingReceiptRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.calls++
	return nil
}

func (r *recordingReceiptRepo) ComputeTotal(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
	r.calls++
	return decimal.Zero, nil
}
