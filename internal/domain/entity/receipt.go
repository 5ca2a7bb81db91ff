package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Receipt represents one sales transaction. It accumulates line items while
// open and is closed exactly once; the cached Total column is kept equal to
// the sum of its items' line totals on every write.
type Receipt struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Status    bool            `gorm:"not null;default:true" json:"status"` // true = open, false = closed
	Total     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"total"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	// Relationships
	Items []ReceiptItem `gorm:"foreignKey:ReceiptID" json:"items"`
}

// BeforeCreate generates a UUID before creating a new receipt
func (r *Receipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Receipt model
func (Receipt) TableName() string {
	return "receipts"
}

// ReceiptItem is one product's accumulated presence on a receipt, keyed by
// (receipt_id, product_id). PriceWhenSold is captured from the catalog at
// first insertion and never updated afterwards, so later catalog price
// changes do not affect receipts already written.
type ReceiptItem struct {
	ReceiptID     uuid.UUID       `gorm:"type:uuid;primary_key" json:"receipt_id"`
	ProductID     uuid.UUID       `gorm:"type:uuid;primary_key" json:"product_id"`
	Quantity      int             `gorm:"not null" json:"quantity"`
	PriceWhenSold decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price_when_sold"`
	LineTotal     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"line_total"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	// Relationships
	Receipt Receipt `gorm:"foreignKey:ReceiptID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// TableName returns the table name for the ReceiptItem model
func (ReceiptItem) TableName() string {
	return "receipt_items"
}
