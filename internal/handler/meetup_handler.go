package handler

import (
	"net/http"

	"yourfuture/internal/middleware"
	"yourfuture/internal/model"
	"yourfuture/internal/service"

	"github.com/gin-gonic/gin"
)

// MeetupHandler handles meetup requests
type MeetupHandler struct {
	service service.MeetupService
}

// NewMeetupHandler creates a new MeetupHandler
func NewMeetupHandler(s service.MeetupService) *MeetupHandler {
	return &MeetupHandler{service: s}
}

func (h *MeetupHandler) List(c *gin.Context) {
	meetups, err := h.service.List(c.Request.Context(), middleware.ActorFrom(c), mineOnly(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, meetups)
}

func (h *MeetupHandler) Create(c *gin.Context) {
	var req model.CreateMeetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	meetup, err := h.service.Create(c.Request.Context(), middleware.ActorFrom(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Meetup submitted for review", "meetup": meetup})
}

func (h *MeetupHandler) Approve(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	meetup, err := h.service.Approve(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Meetup approved", "meetup": meetup})
}

func (h *MeetupHandler) Reject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	req, ok := bindModeration(c)
	if !ok {
		return
	}

	meetup, err := h.service.Reject(c.Request.Context(), middleware.ActorFrom(c), id, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Meetup rejected", "meetup": meetup})
}

// RegisterMeetupRoutes registers meetup routes
func (h *MeetupHandler) RegisterMeetupRoutes(rg *gin.RouterGroup, authMW, optionalAuthMW, adminMW gin.HandlerFunc) {
	meetups := rg.Group("/meetups")
	meetups.GET("", optionalAuthMW, h.List)
	meetups.POST("", authMW, h.Create)

	admin := meetups.Group("")
	admin.Use(authMW, adminMW)
	{
		admin.PUT("/:id/approve", h.Approve)
		admin.PUT("/:id/reject", h.Reject)
	}
}
