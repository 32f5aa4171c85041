package controllers

import (
	"net/http"

	"articlehub/services"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	notifications *services.NotificationService
}

func NewNotificationController(notifications *services.NotificationService) *NotificationController {
	return &NotificationController{notifications: notifications}
}

func (c *NotificationController) ListNotifications(ctx *gin.Context) {
	list, err := c.notifications.ListByUser(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, list)
}
