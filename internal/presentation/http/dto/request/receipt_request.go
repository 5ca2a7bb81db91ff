package request

import "github.com/google/uuid"

// AddReceiptItemRequest represents a request to add a product to a receipt
type AddReceiptItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required"`
}
