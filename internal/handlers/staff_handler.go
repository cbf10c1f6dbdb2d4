package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type StaffHandler struct {
	db *gorm.DB
}

func NewStaffHandler(db *gorm.DB) *StaffHandler {
	return &StaffHandler{db: db}
}

type StaffRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Title    string `json:"title"`
	Active   *bool  `json:"active"`
}

func (h *StaffHandler) List(c *gin.Context) {
	salon, ok := ownerSalon(c, h.db)
	if !ok {
		return
	}

	var staff []models.Staff
	if err := h.db.
		Where("salon_id = ?", salon.ID).
		Order("id ASC").
		Find(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_list_staff", "Erro ao listar profissionais.")
		return
	}

	httpresp.List(c, staff)
}

func (h *StaffHandler) Create(c *gin.Context) {
	salon, ok := ownerSalon(c, h.db)
	if !ok {
		return
	}

	var req StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	staff := models.Staff{
		SalonID:  salon.ID,
		FullName: req.FullName,
		Title:    req.Title,
		Active:   true,
	}

	if err := h.db.Create(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_create_staff", "Erro ao cadastrar profissional.")
		return
	}

	httpresp.Created(c, staff)
}

func (h *StaffHandler) Update(c *gin.Context) {
	salon, ok := ownerSalon(c, h.db)
	if !ok {
		return
	}

	staffID, ok := parseUintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var staff models.Staff
	if err := h.db.
		Where("id = ? AND salon_id = ?", staffID, salon.ID).
		First(&staff).Error; err != nil {
		httperr.NotFound(c, "staff_not_found", "Profissional não encontrado.")
		return
	}

	var req StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	staff.FullName = req.FullName
	staff.Title = req.Title
	if req.Active != nil {
		staff.Active = *req.Active
	}

	if err := h.db.Save(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_update_staff", "Erro ao atualizar profissional.")
		return
	}

	c.JSON(http.StatusOK, staff)
}
