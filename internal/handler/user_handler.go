package handler

import (
	"net/http"

	"yourfuture/internal/middleware"
	"yourfuture/internal/model"
	"yourfuture/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler serves profiles, the admin user list and notifications.
type UserHandler struct {
	users         service.UserService
	notifications service.NotificationService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(users service.UserService, notifications service.NotificationService) *UserHandler {
	return &UserHandler{users: users, notifications: notifications}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, err := h.users.GetProfile(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	profile, updated, err := h.users.UpdateProfile(c.Request.Context(), middleware.ActorFrom(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	if !updated {
		c.JSON(http.StatusOK, gin.H{"message": "No data to update"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "profile": profile})
}

func (h *UserHandler) ListNotifications(c *gin.Context) {
	notifications, err := h.notifications.ListMine(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) SendNotification(c *gin.Context) {
	recipientID, ok := pathID(c)
	if !ok {
		return
	}

	var req model.SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	notification, recipient, err := h.notifications.Send(c.Request.Context(), middleware.ActorFrom(c), recipientID, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Notification sent to " + recipient,
		"notification": notification,
	})
}

// RegisterUserRoutes registers profile and user directory routes
func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	profile := rg.Group("/profile")
	profile.Use(authMW)
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
		profile.GET("/notifications", h.ListNotifications)
	}

	users := rg.Group("/users")
	users.Use(authMW, adminMW)
	{
		users.GET("", h.ListUsers)
		users.POST("/:id/notifications", h.SendNotification)
	}
}
