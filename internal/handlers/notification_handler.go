package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendame/agenda-api/internal/httperr"
	"github.com/agendame/agenda-api/internal/httpresp"
	"github.com/agendame/agenda-api/internal/middleware"
	"github.com/agendame/agenda-api/internal/models"
)

type NotificationHandler struct {
	db *gorm.DB
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{db: db}
}

// List returns the authenticated user's in-app notifications, newest first.
func (h *NotificationHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var notifications []models.Notification
	if err := h.db.WithContext(c.Request.Context()).
		Where("recipient_id = ?", userID).
		Order("created_at DESC").
		Limit(50).
		Find(&notifications).Error; err != nil {
		httperr.Internal(c, "failed_to_list_notifications", "Internal server error")
		return
	}

	httpresp.List(c, 1, notifications)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid notification id")
		return
	}

	var n models.Notification
	if err := h.db.WithContext(c.Request.Context()).
		Where("id = ? AND recipient_id = ?", id, userID).
		First(&n).Error; err != nil {
		httperr.NotFound(c, "notification_not_found", "Notification not found")
		return
	}

	n.Read = true
	if err := h.db.WithContext(c.Request.Context()).Save(&n).Error; err != nil {
		httperr.Internal(c, "failed_to_update_notification", "Internal server error")
		return
	}

	httpresp.OK(c, n)
}
