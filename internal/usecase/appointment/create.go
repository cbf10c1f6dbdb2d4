package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/notification"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	CustomerID uint
	SalonID    uint
	StaffID    uint

	ServiceIDs []uint

	Date         string // YYYY-MM-DD
	Time         string // HH:mm
	CustomerNote string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	notifier *notification.Dispatcher
	audit    *audit.Dispatcher

	leadTime time.Duration
	nowFn    func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	notifier *notification.Dispatcher,
	auditDisp *audit.Dispatcher,
	cfg *config.Config,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		notifier: notifier,
		audit:    auditDisp,
		leadTime: time.Duration(cfg.MinLeadTimeMinutes) * time.Minute,
		nowFn:    timezone.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Salão + profissional (precisa pertencer ao salão)
	// --------------------------------------------------
	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, httperr.ErrBusiness("salon_not_found")
	}

	if _, err := uc.repo.GetStaff(ctx, in.SalonID, in.StaffID); err != nil {
		return nil, httperr.ErrBusiness("staff_not_found")
	}

	// --------------------------------------------------
	// Serviços → duração e preço totais
	// --------------------------------------------------
	if len(in.ServiceIDs) == 0 {
		return nil, httperr.ErrBusiness("empty_services")
	}

	services, err := uc.repo.ListServices(ctx, in.SalonID, in.ServiceIDs)
	if err != nil || len(services) != len(in.ServiceIDs) {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	totalMinutes := 0
	totalPrice := 0.0
	for _, s := range services {
		totalMinutes += s.DurationMin
		totalPrice += s.Price
	}

	// --------------------------------------------------
	// Data / hora
	// --------------------------------------------------
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	end := start.Add(time.Duration(totalMinutes) * time.Minute)

	// --------------------------------------------------
	// Antecedência mínima
	// --------------------------------------------------
	now := uc.nowFn()
	if start.Before(now.Add(uc.leadTime)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	// --------------------------------------------------
	// Expediente (grade do profissional ou do salão)
	// --------------------------------------------------
	staffID := in.StaffID
	window, err := ResolveWorkingWindow(ctx, uc.repo, in.SalonID, &staffID, start)
	if err != nil {
		return nil, err
	}
	if !window.Contains(start, end) {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	// --------------------------------------------------
	// Criação atômica: conflito + insert + snapshot dos
	// serviços numa transação só
	// --------------------------------------------------
	ap := &models.Appointment{
		Code:             uuid.NewString(),
		SalonID:          in.SalonID,
		StaffID:          in.StaffID,
		CustomerID:       in.CustomerID,
		Date:             startOfDay(start),
		StartTime:        start,
		EndTime:          end,
		TotalPrice:       totalPrice,
		TotalDurationMin: totalMinutes,
		Status:           string(domain.InitialStatus()),
		CustomerNote:     in.CustomerNote,
	}

	for _, s := range services {
		ap.Services = append(ap.Services, models.AppointmentServiceItem{
			ServiceID:   s.ID,
			ServiceName: s.Name,
			Price:       s.Price,
			DurationMin: s.DurationMin,
		})
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Notificação (best effort) + auditoria
	// --------------------------------------------------
	uc.notifier.Dispatch(notification.Event{
		UserID: salon.OwnerID,
		Title:  "Novo agendamento",
		Body:   fmt.Sprintf("Nova solicitação de agendamento: %s %s", in.Date, in.Time),
		Kind:   notification.KindNewAppointment,
		RefID:  &ap.ID,
	})

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   &in.CustomerID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
