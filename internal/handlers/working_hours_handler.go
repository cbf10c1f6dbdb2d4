package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type WorkingHoursHandler struct {
	db *gorm.DB
}

func NewWorkingHoursHandler(db *gorm.DB) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db}
}

type WorkingDayConfig struct {
	Weekday    int    `json:"weekday" binding:"min=0,max=6"`
	Closed     bool   `json:"closed"`
	OpenTime   string `json:"open_time"`
	CloseTime  string `json:"close_time"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required"`
}

// --------- Grade padrão do salão ---------

func (h *WorkingHoursHandler) GetSalonHours(c *gin.Context) {
	salon, ok := ownerSalon(c, h.db)
	if !ok {
		return
	}

	h.get(c, salon.ID, nil)
}

func (h *WorkingHoursHandler) UpdateSalonHours(c *gin.Context) {
	salon, ok := ownerSalon(c, h.db)
	if !ok {
		return
	}

	h.update(c, salon.ID, nil)
}

// --------- Grade por profissional (substitui a do salão) ---------

func (h *WorkingHoursHandler) GetStaffHours(c *gin.Context) {
	salon, ok := ownerSalon(c, h.db)
	if !ok {
		return
	}

	staffID, ok := h.staffOfSalon(c, salon.ID)
	if !ok {
		return
	}

	h.get(c, salon.ID, &staffID)
}

func (h *WorkingHoursHandler) UpdateStaffHours(c *gin.Context) {
	salon, ok := ownerSalon(c, h.db)
	if !ok {
		return
	}

	staffID, ok := h.staffOfSalon(c, salon.ID)
	if !ok {
		return
	}

	h.update(c, salon.ID, &staffID)
}

// --------- Internos ---------

func (h *WorkingHoursHandler) staffOfSalon(c *gin.Context, salonID uint) (uint, bool) {
	staffID, ok := parseUintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}

	var count int64
	h.db.Model(&models.Staff{}).
		Where("id = ? AND salon_id = ?", staffID, salonID).
		Count(&count)
	if count == 0 {
		httperr.NotFound(c, "staff_not_found", "Profissional não encontrado.")
		return 0, false
	}

	return staffID, true
}

func (h *WorkingHoursHandler) get(c *gin.Context, salonID uint, staffID *uint) {
	q := h.db.Where("salon_id = ?", salonID)
	if staffID != nil {
		q = q.Where("staff_id = ?", *staffID)
	} else {
		q = q.Where("staff_id IS NULL")
	}

	var hours []models.WorkingHours
	if err := q.Order("weekday ASC").Find(&hours).Error; err != nil {
		httperr.Internal(c, "failed_to_get_working_hours", "Erro ao buscar horários.")
		return
	}

	c.JSON(http.StatusOK, hours)
}

func (h *WorkingHoursHandler) update(c *gin.Context, salonID uint, staffID *uint) {
	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	rows := weekRows(salonID, staffID, req.Days)

	// Troca da grade é tudo-ou-nada: apagar e falhar no insert
	// deixaria a agenda inteira "fechada" pelo default.
	err := h.db.Transaction(func(tx *gorm.DB) error {
		del := tx.Where("salon_id = ?", salonID)
		if staffID != nil {
			del = del.Where("staff_id = ?", *staffID)
		} else {
			del = del.Where("staff_id IS NULL")
		}
		if err := del.Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}

		if len(rows) > 0 {
			return tx.Create(&rows).Error
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_working_hours", "Erro ao salvar horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func weekRows(salonID uint, staffID *uint, days []WorkingDayConfig) []models.WorkingHours {
	var rows []models.WorkingHours
	for _, d := range days {
		rows = append(rows, models.WorkingHours{
			SalonID:    salonID,
			StaffID:    staffID,
			Weekday:    d.Weekday,
			Closed:     d.Closed,
			OpenTime:   d.OpenTime,
			CloseTime:  d.CloseTime,
			BreakStart: d.BreakStart,
			BreakEnd:   d.BreakEnd,
		})
	}
	return rows
}
