package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/skhirtladze/pos-api/internal/domain/entity"
	"github.com/skhirtladze/pos-api/pkg/pagination"
)

// ProductRepository defines the interface for catalog product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error)
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Product, int64, error)
	// UpdatePrice changes the catalog price. Receipts written before the
	// change keep the price snapshotted on their line items.
	UpdatePrice(ctx context.Context, id uuid.UUID, price decimal.Decimal) error
}

// UnitRepository defines the interface for unit data operations
type UnitRepository interface {
	Create(ctx context.Context, unit *entity.Unit) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Unit, error)
	GetByName(ctx context.Context, name string) (*entity.Unit, error)
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Unit, int64, error)
}
