package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/eletrofluxo/storefront/internal/domain/model"
	"github.com/eletrofluxo/storefront/internal/server/http/middleware"
)

// CurrentUserID extracts the authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// CurrentRole extracts the authenticated user role from context.
func CurrentRole(c *gin.Context) model.Role {
	val, ok := c.Get(middleware.UserRoleContextKey)
	if !ok {
		return ""
	}
	role, _ := val.(model.Role)
	return role
}

// IsAdmin reports whether the caller holds the back-office role.
func IsAdmin(c *gin.Context) bool {
	return CurrentRole(c) == model.RoleAdmin
}
