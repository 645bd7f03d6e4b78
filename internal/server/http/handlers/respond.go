package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/eletrofluxo/storefront/internal/domain/errors"
	"github.com/eletrofluxo/storefront/internal/server/http/dto"
)

func abortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Code: code, Message: message})
}

func badRequest(c *gin.Context) {
	abortWithError(c, http.StatusBadRequest, "bad_request", "requisição inválida")
}

// respondDomainError maps domain errors onto the uniform error envelope.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		abortWithError(c, http.StatusNotFound, "not_found", "recurso não encontrado")
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		abortWithError(c, http.StatusConflict, "already_exists", "registro já existe")
	case errors.Is(err, domainErrors.ErrEmptyCart):
		abortWithError(c, http.StatusConflict, "empty_cart", "carrinho vazio")
	case errors.Is(err, domainErrors.ErrInsufficientStock):
		abortWithError(c, http.StatusUnprocessableEntity, "insufficient_stock", "estoque insuficiente")
	case errors.Is(err, domainErrors.ErrProductInactive):
		abortWithError(c, http.StatusUnprocessableEntity, "product_inactive", "produto indisponível")
	case errors.Is(err, domainErrors.ErrInvalidQuantity):
		abortWithError(c, http.StatusUnprocessableEntity, "invalid_quantity", "quantidade inválida")
	case errors.Is(err, domainErrors.ErrInvalidAmount):
		abortWithError(c, http.StatusUnprocessableEntity, "invalid_amount", "valor inválido")
	case errors.Is(err, domainErrors.ErrInvalidPaymentStatus):
		abortWithError(c, http.StatusBadRequest, "invalid_payment_status", "status de pagamento inválido")
	case errors.Is(err, domainErrors.ErrInvalidDeliveryStatus):
		abortWithError(c, http.StatusBadRequest, "invalid_delivery_status", "status de entrega inválido")
	case errors.Is(err, domainErrors.ErrInvalidEmail):
		abortWithError(c, http.StatusBadRequest, "invalid_email", "e-mail inválido")
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		abortWithError(c, http.StatusUnauthorized, "invalid_credentials", "credenciais inválidas")
	case errors.Is(err, domainErrors.ErrForbidden):
		abortWithError(c, http.StatusForbidden, "forbidden", "acesso negado")
	default:
		abortWithError(c, http.StatusInternalServerError, "internal", "erro interno do servidor")
	}
}
