package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	usecase "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db *gorm.DB

	createUC     *usecase.CreateAppointment
	getUC        *usecase.GetAppointment
	listMineUC   *usecase.ListMyAppointments
	listSalonUC  *usecase.ListSalonAppointments
	confirmUC    *usecase.ConfirmAppointment
	completeUC   *usecase.CompleteAppointment
	noShowUC     *usecase.MarkNoShow
	cancelCustUC *usecase.CancelByCustomer
	cancelSalUC  *usecase.CancelBySalon
	rescheduleUC *usecase.RescheduleAppointment
}

func NewAppointmentHandler(
	db *gorm.DB,
	createUC *usecase.CreateAppointment,
	getUC *usecase.GetAppointment,
	listMineUC *usecase.ListMyAppointments,
	listSalonUC *usecase.ListSalonAppointments,
	confirmUC *usecase.ConfirmAppointment,
	completeUC *usecase.CompleteAppointment,
	noShowUC *usecase.MarkNoShow,
	cancelCustUC *usecase.CancelByCustomer,
	cancelSalUC *usecase.CancelBySalon,
	rescheduleUC *usecase.RescheduleAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:           db,
		createUC:     createUC,
		getUC:        getUC,
		listMineUC:   listMineUC,
		listSalonUC:  listSalonUC,
		confirmUC:    confirmUC,
		completeUC:   completeUC,
		noShowUC:     noShowUC,
		cancelCustUC: cancelCustUC,
		cancelSalUC:  cancelSalUC,
		rescheduleUC: rescheduleUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	SalonID    uint   `json:"salon_id" binding:"required"`
	StaffID    uint   `json:"staff_id" binding:"required"`
	ServiceIDs []uint `json:"service_ids" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	Note       string `json:"note"`
}

type ConfirmRequest struct {
	Note string `json:"note"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

type RescheduleRequest struct {
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time" binding:"required"`
	StaffID *uint  `json:"staff_id"`
}

// ======================================================
// CLIENTE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), usecase.CreateAppointmentInput{
		CustomerID:   userID,
		SalonID:      req.SalonID,
		StaffID:      req.StaffID,
		ServiceIDs:   req.ServiceIDs,
		Date:         req.Date,
		Time:         req.Time,
		CustomerNote: req.Note,
	})
	if err != nil {
		if respondBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		return
	}

	c.JSON(http.StatusCreated, dto.FromAppointment(ap))
}

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	filter := parseListFilter(c)
	items, total, err := h.listMineUC.Execute(c.Request.Context(), userID, filter)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	h.respondList(c, items, total, filter)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseUintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.getUC.Execute(c.Request.Context(), id, userID)
	if err != nil {
		if respondBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_get_appointment", "Erro ao buscar agendamento.")
		return
	}

	c.JSON(http.StatusOK, dto.FromAppointment(ap))
}

func (h *AppointmentHandler) CancelByCustomer(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseUintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.cancelCustUC.Execute(c.Request.Context(), id, userID, req.Reason)
	if err != nil {
		if respondBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_cancel_appointment", "Erro ao cancelar agendamento.")
		return
	}

	c.JSON(http.StatusOK, dto.FromAppointment(ap))
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseUintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.rescheduleUC.Execute(c.Request.Context(), usecase.RescheduleInput{
		AppointmentID: id,
		ActorID:       userID,
		NewDate:       req.Date,
		NewTime:       req.Time,
		NewStaffID:    req.StaffID,
	})
	if err != nil {
		if respondBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_reschedule_appointment", "Erro ao remarcar agendamento.")
		return
	}

	c.JSON(http.StatusOK, dto.FromAppointment(ap))
}

// ======================================================
// SALÃO
// ======================================================

func (h *AppointmentHandler) ListForSalon(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	salon, ok := ownerSalon(c, h.db)
	if !ok {
		return
	}

	filter := parseListFilter(c)
	items, total, err := h.listSalonUC.Execute(c.Request.Context(), salon.ID, userID, filter)
	if err != nil {
		if respondBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	h.respondList(c, items, total, filter)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.salonTransition(c, func(ctx *gin.Context, id, userID uint) (*models.Appointment, error) {
		var req ConfirmRequest
		// corpo opcional
		_ = ctx.ShouldBindJSON(&req)
		return h.confirmUC.Execute(ctx.Request.Context(), id, userID, req.Note)
	})
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.salonTransition(c, func(ctx *gin.Context, id, userID uint) (*models.Appointment, error) {
		return h.completeUC.Execute(ctx.Request.Context(), id, userID)
	})
}

func (h *AppointmentHandler) MarkNoShow(c *gin.Context) {
	h.salonTransition(c, func(ctx *gin.Context, id, userID uint) (*models.Appointment, error) {
		return h.noShowUC.Execute(ctx.Request.Context(), id, userID)
	})
}

func (h *AppointmentHandler) CancelBySalon(c *gin.Context) {
	h.salonTransition(c, func(ctx *gin.Context, id, userID uint) (*models.Appointment, error) {
		var req CancelRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			return nil, httperr.ErrBusiness("missing_reason")
		}
		return h.cancelSalUC.Execute(ctx.Request.Context(), id, userID, req.Reason)
	})
}

// ======================================================
// INTERNOS
// ======================================================

type transitionFn func(c *gin.Context, appointmentID, userID uint) (*models.Appointment, error)

// salonTransition concentra o esqueleto comum das transições feitas
// pelo dono do salão: parse do id, execução e tradução de erro.
func (h *AppointmentHandler) salonTransition(c *gin.Context, fn transitionFn) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseUintParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := fn(c, id, userID)
	if err != nil {
		if respondBusiness(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
		return
	}

	c.JSON(http.StatusOK, dto.FromAppointment(ap))
}

func parseListFilter(c *gin.Context) domain.ListFilter {
	filter := domain.ListFilter{Page: 1, PageSize: 20}

	if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
		filter.Page = p
	}
	if ps, err := strconv.Atoi(c.Query("page_size")); err == nil && ps > 0 && ps <= 100 {
		filter.PageSize = ps
	}

	if s := c.Query("status"); s != "" {
		st := domain.Status(s)
		filter.Status = &st
	}
	if from := c.Query("from"); from != "" {
		if t, err := parseDate(from); err == nil {
			filter.FromDate = &t
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := parseDate(to); err == nil {
			filter.ToDate = &t
		}
	}

	return filter
}

func (h *AppointmentHandler) respondList(c *gin.Context, items []models.Appointment, total int64, filter domain.ListFilter) {
	out := make([]dto.AppointmentDTO, 0, len(items))
	for i := range items {
		out = append(out, dto.FromAppointment(&items[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"items":     out,
		"total":     total,
		"page":      filter.Page,
		"page_size": filter.PageSize,
	})
}
