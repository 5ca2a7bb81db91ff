package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/skhirtladze/pos-api/internal/domain/entity"
)

// Sentinel errors returned by ReceiptRepository implementations so the
// service layer can translate them without inspecting driver errors.
var (
	// ErrReceiptNotFound indicates the referenced receipt header does not exist.
	ErrReceiptNotFound = errors.New("receipt not found")
	// ErrReceiptClosed indicates a write was attempted on a closed receipt.
	ErrReceiptClosed = errors.New("receipt is closed")
)

// ReceiptRepository defines the interface for receipt data operations.
// Every mutating operation executes as a single transaction: either all of
// its writes commit or none do.
type ReceiptRepository interface {
	// Open creates a new open receipt with no items and a zero total.
	Open(ctx context.Context) (*entity.Receipt, error)
	// GetByID loads the header together with its items, ordered by insertion.
	// Returns (nil, nil) when no header row exists.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	// GetStatus returns true while the receipt is open.
	// Returns ErrReceiptNotFound when the header row is absent.
	GetStatus(ctx context.Context, id uuid.UUID) (bool, error)
	// Close transitions the receipt to closed. Re-closing is harmless at this
	// level; callers that must reject redundant closes check the status first.
	Close(ctx context.Context, id uuid.UUID) error
	// AddItem merges a product into the receipt: a new row is inserted with
	// the given unit price as its permanent snapshot, or an existing row's
	// quantity is increased and its line total recomputed from the snapshot
	// already stored. The header total is then recomputed from a fresh
	// aggregate over all items. Item write and total update commit together
	// or not at all. Returns the reloaded receipt.
	AddItem(ctx context.Context, receiptID, productID uuid.UUID, quantity int, unitPrice decimal.Decimal) (*entity.Receipt, error)
	// Delete removes all items and the header in one transaction.
	// Deleting a receipt that does not exist is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error
	// ComputeTotal sums line totals directly from the items table, bypassing
	// the cached header value. Used as the source of truth when reconciling.
	ComputeTotal(ctx context.Context, id uuid.UUID) (decimal.Decimal, error)
}
