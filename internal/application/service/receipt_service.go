package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/skhirtladze/pos-api/internal/domain/entity"
	"github.com/skhirtladze/pos-api/internal/domain/repository"
	"github.com/skhirtladze/pos-api/pkg/apperror"
)

// ReceiptService validates caller arguments and translates repository
// sentinels before delegating to the receipt store. All atomicity lives in
// the repository; this layer fails fast so invalid requests never reach it.
type ReceiptService struct {
	receiptRepo repository.ReceiptRepository
	productRepo repository.ProductRepository
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	receiptRepo repository.ReceiptRepository,
	productRepo repository.ProductRepository,
) *ReceiptService {
	return &ReceiptService{
		receiptRepo: receiptRepo,
		productRepo: productRepo,
	}
}

// OpenReceipt creates a new open receipt with no items and a zero total
func (s *ReceiptService) OpenReceipt(ctx context.Context) (*entity.Receipt, error) {
	return s.receiptRepo.Open(ctx)
}

// GetReceipt retrieves a receipt with its items
func (s *ReceiptService) GetReceipt(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}
	return receipt, nil
}

// GetStatus reports whether a receipt is still open
func (s *ReceiptService) GetStatus(ctx context.Context, id uuid.UUID) (bool, error) {
	status, err := s.receiptRepo.GetStatus(ctx, id)
	if errors.Is(err, repository.ErrReceiptNotFound) {
		return false, apperror.NewNotFoundError("Receipt")
	}
	return status, err
}

// AddItem adds a product to an open receipt. Repeated adds of the same
// product accumulate into one line item, and the unit price captured on the
// first add is kept for the lifetime of the line.
func (s *ReceiptService) AddItem(ctx context.Context, receiptID, productID uuid.UUID, quantity int) (*entity.Receipt, error) {
	if receiptID == uuid.Nil || productID == uuid.Nil {
		return nil, apperror.NewBadRequestError("Receipt and product ids are required")
	}
	if quantity <= 0 {
		return nil, apperror.NewBadRequestError("Quantity must be greater than zero")
	}

	status, err := s.receiptRepo.GetStatus(ctx, receiptID)
	if errors.Is(err, repository.ErrReceiptNotFound) {
		return nil, apperror.NewNotFoundError("Receipt")
	}
	if err != nil {
		return nil, err
	}
	if !status {
		return nil, apperror.NewInvalidStateError("Receipt is closed")
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	receipt, err := s.receiptRepo.AddItem(ctx, receiptID, productID, quantity, product.Price)
	// The repository re-checks inside its transaction, so a delete or close
	// racing past the checks above still surfaces the right error.
	if errors.Is(err, repository.ErrReceiptNotFound) {
		return nil, apperror.NewNotFoundError("Receipt")
	}
	if errors.Is(err, repository.ErrReceiptClosed) {
		return nil, apperror.NewInvalidStateError("Receipt is closed")
	}
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// CloseReceipt transitions a receipt from open to closed. Closing an already
// closed receipt is rejected.
func (s *ReceiptService) CloseReceipt(ctx context.Context, id uuid.UUID) error {
	status, err := s.receiptRepo.GetStatus(ctx, id)
	if errors.Is(err, repository.ErrReceiptNotFound) {
		return apperror.NewNotFoundError("Receipt")
	}
	if err != nil {
		return err
	}
	if !status {
		return apperror.NewInvalidStateError("Receipt is already closed")
	}

	err = s.receiptRepo.Close(ctx, id)
	if errors.Is(err, repository.ErrReceiptNotFound) {
		return apperror.NewNotFoundError("Receipt")
	}
	return err
}

// DeleteReceipt removes a receipt and all of its items. Deleting a receipt
// that does not exist is a no-op.
func (s *ReceiptService) DeleteReceipt(ctx context.Context, id uuid.UUID) error {
	return s.receiptRepo.Delete(ctx, id)
}

// GetTotal recomputes the receipt total from its line items, independent of
// the cached header value.
func (s *ReceiptService) GetTotal(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
	if _, err := s.receiptRepo.GetStatus(ctx, id); err != nil {
		if errors.Is(err, repository.ErrReceiptNotFound) {
			return decimal.Zero, apperror.NewNotFoundError("Receipt")
		}
		return decimal.Zero, err
	}
	return s.receiptRepo.ComputeTotal(ctx, id)
}
