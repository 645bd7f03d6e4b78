package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/eletrofluxo/storefront/internal/domain/errors"
	"github.com/eletrofluxo/storefront/internal/domain/model"
	"github.com/eletrofluxo/storefront/internal/server/http/dto"
	"github.com/eletrofluxo/storefront/internal/server/http/middleware"
)

// AuthHandler processes registration and login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	usr, token, err := h.facade.Register(c.Request.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidEmail):
			abortWithError(c, http.StatusBadRequest, "invalid_email", "e-mail inválido")
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			abortWithError(c, http.StatusBadRequest, "invalid_input", "nome e senha são obrigatórios")
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			abortWithError(c, http.StatusConflict, "already_exists", "e-mail já cadastrado")
		default:
			respondDomainError(c, err)
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, User: toUserResponse(usr)})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	usr, token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, User: toUserResponse(usr)})
}

func toUserResponse(usr *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:    usr.ID,
		Email: usr.Email,
		Name:  usr.Name,
		Role:  string(usr.Role),
	}
}
