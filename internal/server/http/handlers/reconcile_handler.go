package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/eletrofluxo/storefront/internal/domain/model"
	"github.com/eletrofluxo/storefront/internal/server/http/dto"
)

// ReconcileHandler applies back-office payment and delivery status updates.
type ReconcileHandler struct {
	facade ReconcileFacade
}

// NewReconcileHandler constructs ReconcileHandler.
func NewReconcileHandler(facade ReconcileFacade) *ReconcileHandler {
	return &ReconcileHandler{facade: facade}
}

// UpdatePayment handles PUT /api/admin/payments/:orderNumber.
func (h *ReconcileHandler) UpdatePayment(c *gin.Context) {
	var req dto.PaymentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	upd := model.PaymentUpdate{
		Status:            model.PaymentStatus(req.Status),
		Notes:             req.Notes,
		RefundAmountCents: req.RefundAmount,
		RefundReason:      req.RefundReason,
	}
	order, err := h.facade.ApplyPaymentUpdate(c.Request.Context(), c.Param("orderNumber"), upd)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order, nil))
}

// UpdateDelivery handles PUT /api/admin/deliveries.
func (h *ReconcileHandler) UpdateDelivery(c *gin.Context) {
	var req dto.DeliveryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	if strings.TrimSpace(req.OrderID) == "" {
		badRequest(c)
		return
	}

	upd := model.DeliveryUpdate{
		Status:            model.DeliveryStatus(req.Status),
		TrackingCode:      req.TrackingCode,
		EstimatedDelivery: req.EstimatedDelivery,
		Notes:             req.Notes,
	}
	order, err := h.facade.ApplyDeliveryUpdate(c.Request.Context(), req.OrderID, upd)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order, nil))
}
