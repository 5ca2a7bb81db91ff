package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// SalesRepository defines the read-only sales aggregation interface
type SalesRepository interface {
	// CountReceipts returns the number of receipts ever opened.
	CountReceipts(ctx context.Context) (int64, error)
	// Revenue returns the sum of all receipt totals.
	Revenue(ctx context.Context) (decimal.Decimal, error)
}
