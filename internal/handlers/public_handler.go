package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	usecase "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

// PublicHandler expõe a vitrine: qualquer visitante consulta salões,
// serviços e disponibilidade sem autenticação.
type PublicHandler struct {
	db             *gorm.DB
	availabilityUC *usecase.GetAvailability
}

func NewPublicHandler(db *gorm.DB, availabilityUC *usecase.GetAvailability) *PublicHandler {
	return &PublicHandler{db: db, availabilityUC: availabilityUC}
}

// ======================================================
// SALÕES
// ======================================================

func (h *PublicHandler) ListSalons(c *gin.Context) {
	q := h.db.Model(&models.Salon{})

	if city := c.Query("city"); city != "" {
		q = q.Where("city ILIKE ?", city)
	}
	if search := c.Query("q"); search != "" {
		q = q.Where("name ILIKE ?", "%"+search+"%")
	}

	var salons []models.Salon
	if err := q.Order("name ASC").Limit(100).Find(&salons).Error; err != nil {
		httperr.Internal(c, "failed_to_list_salons", "Erro ao listar salões.")
		return
	}

	c.JSON(http.StatusOK, salons)
}

func (h *PublicHandler) GetSalon(c *gin.Context) {
	salon, ok := h.findSalon(c)
	if !ok {
		return
	}

	var services []models.Service
	h.db.Where("salon_id = ? AND active = ?", salon.ID, true).
		Order("category ASC, name ASC").
		Find(&services)

	var staff []models.Staff
	h.db.Where("salon_id = ? AND active = ?", salon.ID, true).
		Order("full_name ASC").
		Find(&staff)

	c.JSON(http.StatusOK, gin.H{
		"salon":    salon,
		"services": services,
		"staff":    staff,
	})
}

// ======================================================
// DISPONIBILIDADE
// ======================================================

// GetAvailability responde GET /api/public/salons/:id/availability
// com query params: date=YYYY-MM-DD, service_ids=1,2,3 e staff_id
// opcional (ausente = todos os profissionais ativos).
func (h *PublicHandler) GetAvailability(c *gin.Context) {
	salonID, ok := parseUintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	date, err := parseDate(c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	serviceIDs, err := parseIDList(c.Query("service_ids"))
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Lista de serviços inválida.")
		return
	}

	var staffID *uint
	if raw := c.Query("staff_id"); raw != "" {
		v, convErr := strconv.ParseUint(raw, 10, 64)
		if convErr != nil {
			httperr.BadRequest(c, "invalid_request", "Profissional inválido.")
			return
		}
		id := uint(v)
		staffID = &id
	}

	result, err := h.availabilityUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		SalonID:    salonID,
		StaffID:    staffID,
		ServiceIDs: serviceIDs,
		Date:       date,
	})
	if err != nil {
		if respondBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_get_availability", "Erro ao calcular disponibilidade.")
		return
	}

	c.JSON(http.StatusOK, dto.FromStaffSlots(result))
}

// ======================================================
// AVALIAÇÕES
// ======================================================

func (h *PublicHandler) ListReviews(c *gin.Context) {
	salon, ok := h.findSalon(c)
	if !ok {
		return
	}

	var reviews []models.Review
	if err := h.db.Where("salon_id = ?", salon.ID).
		Order("created_at DESC").
		Limit(50).
		Find(&reviews).Error; err != nil {
		httperr.Internal(c, "failed_to_list_reviews", "Erro ao listar avaliações.")
		return
	}

	// Média e total vêm do conjunto inteiro; a listagem é só a página.
	var avg float64
	h.db.Model(&models.Review{}).
		Where("salon_id = ?", salon.ID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg)

	var total int64
	h.db.Model(&models.Review{}).
		Where("salon_id = ?", salon.ID).
		Count(&total)

	c.JSON(http.StatusOK, reviewSummary(avg, total, reviews))
}

func reviewSummary(avg float64, total int64, items []models.Review) gin.H {
	return gin.H{
		"average": avg,
		"count":   total,
		"items":   items,
	}
}

// ======================================================
// INTERNOS
// ======================================================

// findSalon aceita tanto id numérico quanto slug no path.
func (h *PublicHandler) findSalon(c *gin.Context) (*models.Salon, bool) {
	raw := c.Param("id")

	var salon models.Salon
	var err error
	if id, convErr := strconv.ParseUint(raw, 10, 64); convErr == nil {
		err = h.db.First(&salon, uint(id)).Error
	} else {
		err = h.db.Where("slug = ?", raw).First(&salon).Error
	}
	if err != nil {
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
		return nil, false
	}

	return &salon, true
}

func parseIDList(raw string) ([]uint, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint(v))
	}
	return ids, nil
}
