// File: /controllers/notification_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"socialhub-app/middleware"
	"socialhub-app/models"
	"socialhub-app/store"
	"socialhub-app/utils"
)

type NotificationController struct{}

func NewNotificationController() *NotificationController {
	return &NotificationController{}
}

// GetNotifications returns the session's banners, newest first. An optional
// type query narrows the list.
func (nc *NotificationController) GetNotifications(c *gin.Context) {
	s := middleware.GetSession(c)
	notificationType := models.NotificationType(c.Query("type"))
	now := time.Now()

	list := s.State().Notifications
	responses := make([]models.NotificationResponse, 0, len(list))
	for i := len(list) - 1; i >= 0; i-- {
		if notificationType != "" && list[i].Type != notificationType {
			continue
		}
		responses = append(responses, list[i].ToResponse(now))
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": responses,
		"count":         len(responses),
	})
}

// DismissNotification removes a banner before its timer does.
func (nc *NotificationController) DismissNotification(c *gin.Context) {
	s := middleware.GetSession(c)
	id := c.Param("id")

	found := false
	for _, n := range s.State().Notifications {
		if n.ID == id {
			found = true
			break
		}
	}
	if !found {
		utils.SendError(c, http.StatusNotFound, "Notification not found")
		return
	}

	s.Dispatch(store.RemoveNotification{NotificationID: id})
	utils.SendSuccess(c, "Notification dismissed", nil)
}
