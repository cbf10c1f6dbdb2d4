package appointment

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/notification"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type ConfirmAppointment struct {
	repo     domain.Repository
	machine  domain.Machine
	notifier *notification.Dispatcher
	audit    *audit.Dispatcher
}

func NewConfirmAppointment(
	repo domain.Repository,
	machine domain.Machine,
	notifier *notification.Dispatcher,
	auditDisp *audit.Dispatcher,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		repo:     repo,
		machine:  machine,
		notifier: notifier,
		audit:    auditDisp,
	}
}

func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	actorID uint,
	salonNote string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if ap.Salon.OwnerID != actorID {
		return nil, httperr.ErrBusiness("forbidden")
	}

	if err := uc.machine.Confirm(ap, salonNote, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(notification.Event{
		UserID: ap.CustomerID,
		Title:  "Agendamento confirmado",
		Body:   fmt.Sprintf("Seu agendamento foi confirmado: %s", ap.StartTime.Format("02/01/2006 15:04")),
		Kind:   notification.KindAppointmentConfirmed,
		RefID:  &ap.ID,
	})

	uc.audit.Dispatch(audit.Event{
		SalonID:  ap.SalonID,
		UserID:   &actorID,
		Action:   "appointment_confirmed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
