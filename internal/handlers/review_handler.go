package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ReviewHandler struct {
	db *gorm.DB
}

func NewReviewHandler(db *gorm.DB) *ReviewHandler {
	return &ReviewHandler{db: db}
}

type CreateReviewRequest struct {
	AppointmentID uint   `json:"appointment_id" binding:"required"`
	Rating        int    `json:"rating" binding:"required,min=1,max=5"`
	Comment       string `json:"comment"`
}

// Create só aceita avaliação do próprio cliente, de agendamento
// concluído e uma única vez por agendamento.
func (h *ReviewHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var ap models.Appointment
	if err := h.db.First(&ap, req.AppointmentID).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	if ap.CustomerID != userID {
		httperr.Forbidden(c, "forbidden", "Você não tem permissão para esta operação.")
		return
	}

	if domain.Status(ap.Status) != domain.StatusCompleted {
		httperr.BadRequest(c, "invalid_state", "Só é possível avaliar atendimentos concluídos.")
		return
	}

	var existing int64
	h.db.Model(&models.Review{}).
		Where("appointment_id = ?", ap.ID).
		Count(&existing)
	if existing > 0 {
		httperr.Conflict(c, "review_already_exists", "Este agendamento já foi avaliado.")
		return
	}

	review := models.Review{
		SalonID:       ap.SalonID,
		AppointmentID: ap.ID,
		CustomerID:    userID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}
	if err := h.db.Create(&review).Error; err != nil {
		httperr.Internal(c, "failed_to_create_review", "Erro ao salvar avaliação.")
		return
	}

	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var reviews []models.Review
	if err := h.db.Where("customer_id = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		httperr.Internal(c, "failed_to_list_reviews", "Erro ao listar avaliações.")
		return
	}

	c.JSON(http.StatusOK, reviews)
}
