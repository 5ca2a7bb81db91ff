package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/skhirtladze/pos-api/internal/application/service"
	"github.com/skhirtladze/pos-api/internal/presentation/http/dto/response"
)

// SalesHandler handles sales aggregation HTTP requests
type SalesHandler struct {
	salesService *service.SalesService
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(salesService *service.SalesService) *SalesHandler {
	return &SalesHandler{salesService: salesService}
}

// GetSummary handles retrieving the sales summary
func (h *SalesHandler) GetSummary(c *gin.Context) {
	summary, err := h.salesService.GetSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sales summary retrieved successfully", summary)
}
