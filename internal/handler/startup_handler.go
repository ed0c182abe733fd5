package handler

import (
	"net/http"

	"yourfuture/internal/middleware"
	"yourfuture/internal/model"
	"yourfuture/internal/service"

	"github.com/gin-gonic/gin"
)

// StartupHandler handles startup requests
type StartupHandler struct {
	service service.StartupService
}

// NewStartupHandler creates a new StartupHandler
func NewStartupHandler(s service.StartupService) *StartupHandler {
	return &StartupHandler{service: s}
}

func (h *StartupHandler) List(c *gin.Context) {
	startups, err := h.service.List(c.Request.Context(), middleware.ActorFrom(c), mineOnly(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, startups)
}

func (h *StartupHandler) Create(c *gin.Context) {
	var req model.CreateStartupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	startup, err := h.service.Create(c.Request.Context(), middleware.ActorFrom(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Startup submitted for review", "startup": startup})
}

func (h *StartupHandler) Approve(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	startup, err := h.service.Approve(c.Request.Context(), middleware.ActorFrom(c), id)
	h.respond(c, "Startup approved", startup, err)
}

func (h *StartupHandler) Reject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	req, ok := bindModeration(c)
	if !ok {
		return
	}

	startup, err := h.service.Reject(c.Request.Context(), middleware.ActorFrom(c), id, req.Reason)
	h.respond(c, "Startup rejected", startup, err)
}

func (h *StartupHandler) UpdateFunds(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	body, ok := bindObject(c)
	if !ok {
		return
	}

	startup, err := h.service.UpdateFunds(c.Request.Context(), middleware.ActorFrom(c), id, body)
	h.respond(c, "Funds updated", startup, err)
}

func (h *StartupHandler) UpdateTimeline(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	body, ok := bindObject(c)
	if !ok {
		return
	}

	startup, err := h.service.UpdateTimeline(c.Request.Context(), middleware.ActorFrom(c), id, body)
	h.respond(c, "Timeline updated", startup, err)
}

func (h *StartupHandler) ToggleHold(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	startup, err := h.service.ToggleHold(c.Request.Context(), middleware.ActorFrom(c), id)
	message := "Startup released"
	if err == nil && startup.IsHeld {
		message = "Startup held"
	}
	h.respond(c, message, startup, err)
}

func (h *StartupHandler) respond(c *gin.Context, message string, startup service.StartupView, err error) {
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message, "startup": startup})
}

// bindObject decodes a JSON object body of arbitrary keys.
func bindObject(c *gin.Context) (map[string]any, bool) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		bindError(c, err)
		return nil, false
	}
	if body == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be a JSON object"})
		return nil, false
	}
	return body, true
}

// RegisterStartupRoutes registers startup routes
func (h *StartupHandler) RegisterStartupRoutes(rg *gin.RouterGroup, authMW, optionalAuthMW, adminMW gin.HandlerFunc) {
	startups := rg.Group("/startups")
	startups.GET("", optionalAuthMW, h.List)

	owner := startups.Group("")
	owner.Use(authMW)
	{
		owner.POST("", h.Create)
		owner.PUT("/:id/funds", h.UpdateFunds)
		owner.PUT("/:id/timeline", h.UpdateTimeline)
	}

	admin := startups.Group("")
	admin.Use(authMW, adminMW)
	{
		admin.PUT("/:id/approve", h.Approve)
		admin.PUT("/:id/reject", h.Reject)
		admin.PUT("/:id/toggle_hold", h.ToggleHold)
	}
}
