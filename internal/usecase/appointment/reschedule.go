package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type RescheduleInput struct {
	AppointmentID uint
	ActorID       uint

	NewDate string // YYYY-MM-DD
	NewTime string // HH:mm

	// Troca opcional de profissional; nulo mantém o atual.
	NewStaffID *uint
}

// ======================================================
// USE CASE
// ======================================================

type RescheduleAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRescheduleAppointment(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		audit: auditDisp,
	}
}

// Execute move o agendamento mantendo os serviços originais (a duração
// não é recalculada) e revalida o novo horário excluindo o próprio
// agendamento da comparação. Status e histórico não são tocados: um
// confirmado permanece confirmado.
func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if ap.CustomerID != in.ActorID && ap.Salon.OwnerID != in.ActorID {
		return nil, httperr.ErrBusiness("forbidden")
	}

	newStart, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.NewDate+" "+in.NewTime,
		timezone.Location(),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	if in.NewStaffID != nil {
		if _, err := uc.repo.GetStaff(ctx, ap.SalonID, *in.NewStaffID); err != nil {
			return nil, httperr.ErrBusiness("staff_not_found")
		}
	}

	if err := domain.Reschedule(ap, startOfDay(newStart), newStart, in.NewStaffID); err != nil {
		return nil, err
	}

	if err := uc.repo.RescheduleAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  ap.SalonID,
		UserID:   &in.ActorID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"new_date": in.NewDate,
			"new_time": in.NewTime,
		},
	})

	return ap, nil
}
