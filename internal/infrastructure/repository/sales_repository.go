package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/skhirtladze/pos-api/internal/domain/entity"
	domainRepo "github.com/skhirtladze/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type salesRepository struct {
	db *gorm.DB
}

// NewSalesRepository creates a new sales aggregation repository
func NewSalesRepository(db *gorm.DB) domainRepo.SalesRepository {
	return &salesRepository{db: db}
}

func (r *salesRepository) CountReceipts(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Receipt{}).Count(&count).Error
	return count, err
}

func (r *salesRepository) Revenue(ctx context.Context) (decimal.Decimal, error) {
	var revenue decimal.Decimal
	row := r.db.WithContext(ctx).Model(&entity.Receipt{}).
		Select("COALESCE(SUM(total), 0)").
		Row()
	if err := row.Scan(&revenue); err != nil {
		return decimal.Zero, err
	}
	return revenue, nil
}
