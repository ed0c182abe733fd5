package handler

import (
	"net/http"

	"yourfuture/internal/middleware"
	"yourfuture/internal/model"
	"yourfuture/internal/service"

	"github.com/gin-gonic/gin"
)

// VacancyHandler handles vacancy requests
type VacancyHandler struct {
	service service.VacancyService
}

// NewVacancyHandler creates a new VacancyHandler
func NewVacancyHandler(s service.VacancyService) *VacancyHandler {
	return &VacancyHandler{service: s}
}

func (h *VacancyHandler) List(c *gin.Context) {
	vacancies, err := h.service.List(c.Request.Context(), middleware.ActorFrom(c), mineOnly(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, vacancies)
}

func (h *VacancyHandler) Create(c *gin.Context) {
	var req model.CreateVacancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	vacancy, err := h.service.Create(c.Request.Context(), middleware.ActorFrom(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Vacancy submitted for review", "vacancy": vacancy})
}

func (h *VacancyHandler) Approve(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	vacancy, err := h.service.Approve(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vacancy approved", "vacancy": vacancy})
}

func (h *VacancyHandler) Reject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	req, ok := bindModeration(c)
	if !ok {
		return
	}

	vacancy, err := h.service.Reject(c.Request.Context(), middleware.ActorFrom(c), id, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vacancy rejected", "vacancy": vacancy})
}

func (h *VacancyHandler) Apply(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.Apply(c.Request.Context(), middleware.ActorFrom(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Applied successfully"})
}

// RegisterVacancyRoutes registers vacancy routes
func (h *VacancyHandler) RegisterVacancyRoutes(rg *gin.RouterGroup, authMW, optionalAuthMW, adminMW gin.HandlerFunc) {
	vacancies := rg.Group("/vacancies")
	vacancies.GET("", optionalAuthMW, h.List)
	vacancies.POST("", authMW, h.Create)
	vacancies.POST("/:id/apply", authMW, h.Apply)

	admin := vacancies.Group("")
	admin.Use(authMW, adminMW)
	{
		admin.PUT("/:id/approve", h.Approve)
		admin.PUT("/:id/reject", h.Reject)
	}
}
