package handler

import (
	"github.com/akshaymhatre/receiptly-api/internal/application/service"
	"github.com/akshaymhatre/receiptly-api/internal/domain/entity"
	"github.com/akshaymhatre/receiptly-api/internal/presentation/http/dto/request"
	"github.com/akshaymhatre/receiptly-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ReceiptHandler handles stateless receipt link generation
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// GenerateLink validates a full draft in one shot and returns the deep
// link. Validation failures come back as 422 with the first failed field
// only; no field value is altered.
func (h *ReceiptHandler) GenerateLink(c *gin.Context) {
	var req request.ReceiptLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	link, err := h.receiptService.GenerateLink(entity.ReceiptDraft{
		CustomerName:    req.CustomerName,
		TransactionDate: req.TransactionDate,
		Amount:          req.Amount,
		MobileNumber:    req.MobileNumber,
		Remarks:         req.Remarks,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt link generated", link)
}
