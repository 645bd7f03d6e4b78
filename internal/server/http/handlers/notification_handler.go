package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eletrofluxo/storefront/internal/server/http/dto"
)

// NotificationHandler serves the back-office alert feed.
type NotificationHandler struct {
	facade NotificationFacade
}

// NewNotificationHandler constructs NotificationHandler.
func NewNotificationHandler(facade NotificationFacade) *NotificationHandler {
	return &NotificationHandler{facade: facade}
}

// List handles GET /api/admin/notifications.
func (h *NotificationHandler) List(c *gin.Context) {
	feed, err := h.facade.Notifications(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	response := make([]dto.NotificationResponse, 0, len(feed))
	for _, n := range feed {
		response = append(response, dto.NotificationResponse{
			ID:        n.ID,
			Type:      string(n.Type),
			Title:     n.Title,
			Message:   n.Message,
			CreatedAt: n.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, response)
}

// MarkRead handles PATCH /api/admin/notifications/:id/read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.facade.MarkNotificationRead(c.Request.Context(), c.Param("id")); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MarkAllRead handles PATCH /api/admin/notifications.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.facade.MarkAllNotificationsRead(c.Request.Context()); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
