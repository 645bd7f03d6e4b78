package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eletrofluxo/storefront/internal/domain/model"
	"github.com/eletrofluxo/storefront/internal/server/http/dto"
)

// OrderHandler manages checkout and order reads.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Checkout handles POST /api/checkout.
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c)
			return
		}
	}

	order, paymentURL, err := h.facade.Checkout(c.Request.Context(), CurrentUserID(c), req.Notes)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CheckoutResponse{
		Order:      toOrderResponse(*order, nil),
		PaymentURL: paymentURL,
	})
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o, nil))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/orders/:number.
func (h *OrderHandler) Get(c *gin.Context) {
	order, items, err := h.facade.Order(c.Request.Context(), c.Param("number"), CurrentUserID(c), IsAdmin(c))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order, items))
}

// ListAll handles GET /api/admin/orders.
func (h *OrderHandler) ListAll(c *gin.Context) {
	orders, err := h.facade.AllOrders(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o, nil))
	}
	c.JSON(http.StatusOK, response)
}

func toOrderResponse(order model.Order, items []model.OrderItem) dto.OrderResponse {
	response := dto.OrderResponse{
		Number:            order.Number,
		Status:            string(order.Status),
		PaymentStatus:     string(order.PaymentStatus),
		DeliveryStatus:    string(order.DeliveryStatus()),
		TotalCents:        order.TotalCents,
		Notes:             order.Notes,
		TrackingCode:      order.TrackingCode,
		EstimatedDelivery: order.EstimatedDelivery,
		DeliveredAt:       order.DeliveredAt,
		CreatedAt:         order.CreatedAt,
	}
	for _, item := range items {
		response.Items = append(response.Items, dto.OrderItemResponse{
			ProductID:      item.ProductID,
			ProductName:    item.ProductName,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		})
	}
	return response
}
