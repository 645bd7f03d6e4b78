package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eletrofluxo/storefront/internal/domain/model"
	"github.com/eletrofluxo/storefront/internal/server/http/dto"
)

// CatalogHandler manages storefront and back-office product endpoints.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// List handles GET /api/products.
func (h *CatalogHandler) List(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, toProductResponse(p))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/products/:id.
func (h *CatalogHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c)
		return
	}

	product, err := h.facade.Product(c.Request.Context(), id, IsAdmin(c))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(*product))
}

// Create handles POST /api/admin/products.
func (h *CatalogHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	product, err := h.facade.CreateProduct(c.Request.Context(), productFromRequest(req))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProductResponse(*product))
}

// Update handles PUT /api/admin/products/:id.
func (h *CatalogHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c)
		return
	}

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	product := productFromRequest(req)
	product.ID = id
	if err := h.facade.UpdateProduct(c.Request.Context(), product); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(*product))
}

// Deactivate handles DELETE /api/admin/products/:id.
func (h *CatalogHandler) Deactivate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c)
		return
	}

	if err := h.facade.DeactivateProduct(c.Request.Context(), id); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func productFromRequest(req dto.ProductRequest) *model.Product {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &model.Product{
		SKU:               req.SKU,
		Name:              req.Name,
		Description:       req.Description,
		PriceCents:        req.PriceCents,
		StockQuantity:     req.StockQuantity,
		LowStockThreshold: req.LowStockThreshold,
		IsActive:          active,
	}
}

func toProductResponse(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:                p.ID,
		SKU:               p.SKU,
		Name:              p.Name,
		Description:       p.Description,
		PriceCents:        p.PriceCents,
		StockQuantity:     p.StockQuantity,
		LowStockThreshold: p.LowStockThreshold,
		IsActive:          p.IsActive,
		CreatedAt:         p.CreatedAt,
	}
}
