package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// --------------------------------------------------
// Datas sempre no fuso único da aplicação
// --------------------------------------------------

func parseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, timezone.Location())
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

// ownerSalon resolve o salão do usuário autenticado. Rotas /api/salon/*
// só fazem sentido para donos com salão cadastrado.
func ownerSalon(c *gin.Context, db *gorm.DB) (*models.Salon, bool) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var salon models.Salon
	if err := db.Where("owner_id = ?", userID).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
		return nil, false
	}
	return &salon, true
}

// --------------------------------------------------
// Tradução de erros de negócio para HTTP
// --------------------------------------------------

var businessMessages = map[string]string{
	"salon_not_found":       "Salão não encontrado.",
	"staff_not_found":       "Profissional não encontrado.",
	"service_not_found":     "Serviço não encontrado.",
	"appointment_not_found": "Agendamento não encontrado.",
	"forbidden":             "Você não tem permissão para esta operação.",
	"invalid_state":         "Operação não permitida no status atual.",
	"time_conflict":         "O horário selecionado não está mais disponível.",
	"missing_reason":        "Informe o motivo do cancelamento.",
	"empty_services":        "Selecione ao menos um serviço.",
	"invalid_date_or_time":  "Data ou hora inválida.",
	"too_soon":              "Horário muito próximo; escolha outro.",
	"outside_working_hours": "Fora do horário de atendimento.",
}

// respondBusiness devolve true quando o erro era de negócio (esperado).
// Qualquer outra coisa é falha real e vira 500 genérico no chamador.
func respondBusiness(c *gin.Context, err error) bool {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		return false
	}

	msg := businessMessages[code]
	if msg == "" {
		msg = "Operação rejeitada."
	}

	switch code {
	case "salon_not_found", "staff_not_found", "service_not_found", "appointment_not_found":
		httperr.NotFound(c, code, msg)
	case "forbidden":
		httperr.Forbidden(c, code, msg)
	case "time_conflict":
		httperr.Conflict(c, code, msg)
	default:
		httperr.BadRequest(c, code, msg)
	}

	return true
}
