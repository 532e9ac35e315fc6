package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yatra-labs/yatra-server/internal/helpers"
	"github.com/yatra-labs/yatra-server/internal/models"
	"github.com/yatra-labs/yatra-server/internal/services"
)

func ListNotifications(ns *services.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := currentUserID(c)
		if !ok {
			return
		}

		notifications, err := ns.List(userId)
		if err != nil {
			c.JSON(http.StatusInternalServerError, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(notifications, ""))
	}
}

func CreateNotification(ns *services.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := currentUserID(c)
		if !ok {
			return
		}

		var n models.Notification
		if err := c.ShouldBindJSON(&n); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		created, err := ns.Notify(userId, &n)
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, helpers.SuccessResponse(created, ""))
	}
}

func MarkNotificationRead(ns *services.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := currentUserID(c)
		if !ok {
			return
		}

		notificationId, err := uuid.Parse(helpers.StringTrim(c.Param("id")))
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid notification ID format"))
			return
		}

		if err := ns.MarkRead(userId, notificationId); err != nil {
			c.JSON(http.StatusNotFound, helpers.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(nil, "notification marked as read"))
	}
}

func ClearNotifications(ns *services.NotificationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := currentUserID(c)
		if !ok {
			return
		}

		ns.ClearUser(userId)
		c.JSON(http.StatusOK, helpers.SuccessResponse(nil, "notifications cleared"))
	}
}
