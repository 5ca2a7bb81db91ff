package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/skhirtladze/pos-api/internal/application/service"
	"github.com/skhirtladze/pos-api/internal/presentation/http/dto/request"
	"github.com/skhirtladze/pos-api/internal/presentation/http/dto/response"
	"github.com/skhirtladze/pos-api/pkg/pagination"
)

// UnitHandler handles unit-of-measurement HTTP requests
type UnitHandler struct {
	unitService *service.UnitService
}

// NewUnitHandler creates a new unit handler
func NewUnitHandler(unitService *service.UnitService) *UnitHandler {
	return &UnitHandler{unitService: unitService}
}

// Create handles creating a new unit
func (h *UnitHandler) Create(c *gin.Context) {
	var req request.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	unit, err := h.unitService.CreateUnit(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Unit created successfully", unit)
}

// Get handles retrieving a unit by id
func (h *UnitHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid unit id")
		return
	}

	unit, err := h.unitService.GetUnit(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Unit retrieved successfully", unit)
}

// List handles listing units
func (h *UnitHandler) List(c *gin.Context) {
	var filter request.ListFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &pagination.PaginationParams{
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}

	result, err := h.unitService.ListUnits(c.Request.Context(), params, filter.Search)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Units retrieved successfully", result)
}
