package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	UnitID  uuid.UUID       `json:"unit_id" binding:"required"`
	Name    string          `json:"name" binding:"required,min=1,max=255"`
	Barcode string          `json:"barcode" binding:"required,min=1,max=100"`
	Price   decimal.Decimal `json:"price" binding:"required"`
}

// UpdateProductRequest represents a product price update request
type UpdateProductRequest struct {
	Price decimal.Decimal `json:"price" binding:"required"`
}

// CreateUnitRequest represents a unit creation request
type CreateUnitRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// ListFilterRequest represents common list query parameters
type ListFilterRequest struct {
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
