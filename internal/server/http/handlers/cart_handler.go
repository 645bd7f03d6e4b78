package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eletrofluxo/storefront/internal/domain/model"
	"github.com/eletrofluxo/storefront/internal/server/http/dto"
)

// CartHandler manages the authenticated user's cart.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// View handles GET /api/cart.
func (h *CartHandler) View(c *gin.Context) {
	view, err := h.facade.Cart(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(view))
}

// AddItem handles POST /api/cart/items.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	if err := h.facade.AddCartItem(c.Request.Context(), CurrentUserID(c), req.ProductID, req.Quantity); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveItem handles DELETE /api/cart/items/:productID.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productID"), 10, 64)
	if err != nil {
		badRequest(c)
		return
	}

	if err := h.facade.RemoveCartItem(c.Request.Context(), CurrentUserID(c), productID); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.facade.ClearCart(c.Request.Context(), CurrentUserID(c)); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toCartResponse(view *model.CartView) dto.CartResponse {
	response := dto.CartResponse{
		Items:      make([]dto.CartLineResponse, 0, len(view.Lines)),
		TotalCents: view.TotalCents,
	}
	for _, line := range view.Lines {
		response.Items = append(response.Items, dto.CartLineResponse{
			ProductID:     line.Product.ID,
			Name:          line.Product.Name,
			PriceCents:    line.Product.PriceCents,
			Quantity:      line.Quantity,
			SubtotalCents: line.SubtotalCents,
		})
	}
	return response
}
