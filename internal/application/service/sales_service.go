package service

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/skhirtladze/pos-api/internal/domain/repository"
)

// SalesService exposes read-only sales aggregates
type SalesService struct {
	salesRepo repository.SalesRepository
}

// NewSalesService creates a new sales service
func NewSalesService(salesRepo repository.SalesRepository) *SalesService {
	return &SalesService{salesRepo: salesRepo}
}

// SalesSummary holds the aggregate sales figures
type SalesSummary struct {
	Receipts int64           `json:"n_receipts"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// GetSummary returns the number of receipts and the total revenue
func (s *SalesService) GetSummary(ctx context.Context) (*SalesSummary, error) {
	count, err := s.salesRepo.CountReceipts(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.salesRepo.Revenue(ctx)
	if err != nil {
		return nil, err
	}
	return &SalesSummary{Receipts: count, Revenue: revenue}, nil
}
