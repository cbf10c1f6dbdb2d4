package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type SalonHandler struct {
	db *gorm.DB
}

func NewSalonHandler(db *gorm.DB) *SalonHandler {
	return &SalonHandler{db: db}
}

// --------- Requests ---------

type CreateSalonRequest struct {
	Name    string `json:"name" binding:"required"`
	Slug    string `json:"slug" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	About   string `json:"about"`
}

type UpdateSalonRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	About   *string `json:"about"`
}

// --------- Owner ---------

func (h *SalonHandler) CreateMySalon(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	if role != "owner" {
		httperr.Forbidden(c, "forbidden", "Apenas donos de salão podem criar salões.")
		return
	}

	var req CreateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var count int64
	h.db.Model(&models.Salon{}).Where("owner_id = ?", userID).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "salon_already_exists", "Você já possui um salão cadastrado.")
		return
	}

	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	h.db.Model(&models.Salon{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "slug_already_exists", "Este identificador já está em uso.")
		return
	}

	salon := models.Salon{
		OwnerID: userID,
		Name:    req.Name,
		Slug:    slug,
		Phone:   req.Phone,
		Address: req.Address,
		City:    req.City,
		About:   req.About,
	}

	if err := h.db.Create(&salon).Error; err != nil {
		httperr.Internal(c, "failed_to_create_salon", "Erro ao criar salão.")
		return
	}

	c.JSON(http.StatusCreated, salon)
}

func (h *SalonHandler) GetMySalon(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var salon models.Salon
	if err := h.db.Where("owner_id = ?", userID).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	c.JSON(http.StatusOK, salon)
}

func (h *SalonHandler) UpdateMySalon(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var salon models.Salon
	if err := h.db.Where("owner_id = ?", userID).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	var req UpdateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		salon.Name = *req.Name
	}
	if req.Phone != nil {
		salon.Phone = *req.Phone
	}
	if req.Address != nil {
		salon.Address = *req.Address
	}
	if req.City != nil {
		salon.City = *req.City
	}
	if req.About != nil {
		salon.About = *req.About
	}

	if err := h.db.Save(&salon).Error; err != nil {
		httperr.Internal(c, "failed_to_update_salon", "Erro ao atualizar salão.")
		return
	}

	c.JSON(http.StatusOK, salon)
}
