package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/skhirtladze/pos-api/internal/domain/entity"
	"github.com/skhirtladze/pos-api/internal/domain/repository"
	"github.com/skhirtladze/pos-api/pkg/apperror"
	"github.com/skhirtladze/pos-api/pkg/pagination"
)

// ProductService handles catalog product operations
type ProductService struct {
	productRepo repository.ProductRepository
	unitRepo    repository.UnitRepository
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repository.ProductRepository,
	unitRepo repository.UnitRepository,
) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		unitRepo:    unitRepo,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	UnitID  uuid.UUID
	Name    string
	Barcode string
	Price   decimal.Decimal
}

// CreateProduct creates a new catalog product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Name cannot be empty")
	}
	if input.Barcode == "" {
		return nil, apperror.NewBadRequestError("Barcode cannot be empty")
	}
	if !input.Price.IsPositive() {
		return nil, apperror.NewBadRequestError("Price must be greater than zero")
	}

	unit, err := s.unitRepo.GetByID(ctx, input.UnitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, apperror.NewNotFoundError("Unit")
	}

	existing, err := s.productRepo.GetByBarcode(ctx, input.Barcode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Product barcode already exists")
	}

	product := &entity.Product{
		UnitID:  input.UnitID,
		Name:    input.Name,
		Barcode: input.Barcode,
		Price:   input.Price,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return s.productRepo.GetByID(ctx, product.ID)
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products with optional search and pagination
func (s *ProductService) ListProducts(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// UpdatePrice changes a product's catalog price. Line items written before
// the change keep their snapshotted price.
func (s *ProductService) UpdatePrice(ctx context.Context, id uuid.UUID, price decimal.Decimal) (*entity.Product, error) {
	if !price.IsPositive() {
		return nil, apperror.NewBadRequestError("Price must be greater than zero")
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if err := s.productRepo.UpdatePrice(ctx, id, price); err != nil {
		return nil, err
	}
	return s.productRepo.GetByID(ctx, id)
}
