package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/skhirtladze/pos-api/internal/domain/entity"
	"github.com/skhirtladze/pos-api/internal/domain/repository"
	"github.com/skhirtladze/pos-api/pkg/apperror"
	"github.com/skhirtladze/pos-api/pkg/pagination"
)

// UnitService handles unit-of-measurement operations
type UnitService struct {
	unitRepo repository.UnitRepository
}

// NewUnitService creates a new unit service
func NewUnitService(unitRepo repository.UnitRepository) *UnitService {
	return &UnitService{unitRepo: unitRepo}
}

// CreateUnit creates a new unit of measurement
func (s *UnitService) CreateUnit(ctx context.Context, name string) (*entity.Unit, error) {
	if name == "" {
		return nil, apperror.NewBadRequestError("Name cannot be empty")
	}

	existing, err := s.unitRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Unit already exists")
	}

	unit := &entity.Unit{Name: name}
	if err := s.unitRepo.Create(ctx, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

// GetUnit retrieves a unit by ID
func (s *UnitService) GetUnit(ctx context.Context, id uuid.UUID) (*entity.Unit, error) {
	unit, err := s.unitRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, apperror.NewNotFoundError("Unit")
	}
	return unit, nil
}

// ListUnits lists units with optional search and pagination
func (s *UnitService) ListUnits(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Unit], error) {
	units, total, err := s.unitRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(units, pag), nil
}
