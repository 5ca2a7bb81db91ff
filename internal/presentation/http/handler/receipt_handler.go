package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/skhirtladze/pos-api/internal/application/service"
	"github.com/skhirtladze/pos-api/internal/presentation/http/dto/request"
	"github.com/skhirtladze/pos-api/internal/presentation/http/dto/response"
)

// ReceiptHandler handles receipt-related HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// Open handles opening a new receipt
func (h *ReceiptHandler) Open(c *gin.Context) {
	receipt, err := h.receiptService.OpenReceipt(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Receipt opened successfully", receipt)
}

// Get handles retrieving a receipt with its items
func (h *ReceiptHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt id")
		return
	}

	receipt, err := h.receiptService.GetReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt retrieved successfully", receipt)
}

// AddItem handles adding a product to an open receipt
func (h *ReceiptHandler) AddItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt id")
		return
	}

	var req request.AddReceiptItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	receipt, err := h.receiptService.AddItem(c.Request.Context(), id, req.ProductID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Item added successfully", receipt)
}

// Close handles closing an open receipt
func (h *ReceiptHandler) Close(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt id")
		return
	}

	if err := h.receiptService.CloseReceipt(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt closed successfully", nil)
}

// Delete handles deleting a receipt and its items
func (h *ReceiptHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt id")
		return
	}

	if err := h.receiptService.DeleteReceipt(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// GetTotal handles retrieving the recomputed receipt total
func (h *ReceiptHandler) GetTotal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt id")
		return
	}

	total, err := h.receiptService.GetTotal(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt total computed successfully", gin.H{"total": total})
}
