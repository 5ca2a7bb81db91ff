package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/skhirtladze/pos-api/internal/domain/entity"
	domainRepo "github.com/skhirtladze/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new receipt repository
func NewReceiptRepository(db *gorm.DB) domainRepo.ReceiptRepository {
	return &receiptRepository{db: db}
}

func (r *receiptRepository) Open(ctx context.Context) (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Status: true,
		Total:  decimal.Zero,
	}
	if err := r.db.WithContext(ctx).Create(receipt).Error; err != nil {
		return nil, err
	}
	receipt.Items = []entity.ReceiptItem{}
	return receipt, nil
}

func (r *receiptRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	var receipt entity.Receipt
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("receipt_items.created_at ASC, receipt_items.product_id ASC")
		}).
		First(&receipt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if receipt.Items == nil {
		receipt.Items = []entity.ReceiptItem{}
	}
	return &receipt, nil
}

func (r *receiptRepository) GetStatus(ctx context.Context, id uuid.UUID) (bool, error) {
	var receipt entity.Receipt
	err := r.db.WithContext(ctx).Select("status").First(&receipt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, domainRepo.ErrReceiptNotFound
	}
	if err != nil {
		return false, err
	}
	return receipt.Status, nil
}

func (r *receiptRepository) Close(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&entity.Receipt{}).
		Where("id = ?", id).
		Update("status", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainRepo.ErrReceiptNotFound
	}
	return nil
}

// AddItem runs the merge and the total recompute inside one transaction so a
// failure at any point leaves the receipt exactly as it was before the call.
func (r *receiptRepository) AddItem(ctx context.Context, receiptID, productID uuid.UUID, quantity int, unitPrice decimal.Decimal) (*entity.Receipt, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var receipt entity.Receipt
		if err := tx.Select("id", "status").First(&receipt, "id = ?", receiptID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainRepo.ErrReceiptNotFound
			}
			return err
		}
		if !receipt.Status {
			return domainRepo.ErrReceiptClosed
		}

		var item entity.ReceiptItem
		err := tx.Where("receipt_id = ? AND product_id = ?", receiptID, productID).
			First(&item).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = entity.ReceiptItem{
				ReceiptID:     receiptID,
				ProductID:     productID,
				Quantity:      quantity,
				PriceWhenSold: unitPrice,
				LineTotal:     unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			// Merge into the existing row. The snapshot price already stored
			// on the row is reused, never the price passed by the caller.
			newQuantity := item.Quantity + quantity
			newLineTotal := item.PriceWhenSold.Mul(decimal.NewFromInt(int64(newQuantity)))
			if err := tx.Model(&entity.ReceiptItem{}).
				Where("receipt_id = ? AND product_id = ?", receiptID, productID).
				Updates(map[string]interface{}{
					"quantity":   newQuantity,
					"line_total": newLineTotal,
				}).Error; err != nil {
				return err
			}
		}

		// Recompute from a fresh aggregate rather than adding incrementally,
		// so the cached total can never drift from the items.
		total, err := sumLineTotals(tx, receiptID)
		if err != nil {
			return err
		}
		return tx.Model(&entity.Receipt{}).
			Where("id = ?", receiptID).
			Update("total", total).Error
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, receiptID)
}

func (r *receiptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("receipt_id = ?", id).Delete(&entity.ReceiptItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Receipt{}, "id = ?", id).Error
	})
}

func (r *receiptRepository) ComputeTotal(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
	return sumLineTotals(r.db.WithContext(ctx), id)
}

func sumLineTotals(db *gorm.DB, receiptID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	row := db.Model(&entity.ReceiptItem{}).
		Where("receipt_id = ?", receiptID).
		Select("COALESCE(SUM(line_total), 0)").
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
