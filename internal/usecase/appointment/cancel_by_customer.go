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

type CancelByCustomer struct {
	repo     domain.Repository
	machine  domain.Machine
	notifier *notification.Dispatcher
	audit    *audit.Dispatcher
}

func NewCancelByCustomer(
	repo domain.Repository,
	machine domain.Machine,
	notifier *notification.Dispatcher,
	auditDisp *audit.Dispatcher,
) *CancelByCustomer {
	return &CancelByCustomer{
		repo:     repo,
		machine:  machine,
		notifier: notifier,
		audit:    auditDisp,
	}
}

func (uc *CancelByCustomer) Execute(
	ctx context.Context,
	appointmentID uint,
	customerID uint,
	reason string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if ap.CustomerID != customerID {
		return nil, httperr.ErrBusiness("forbidden")
	}

	if err := uc.machine.CancelByCustomer(ap, reason, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(notification.Event{
		UserID: ap.Salon.OwnerID,
		Title:  "Agendamento cancelado",
		Body:   fmt.Sprintf("O cliente cancelou o agendamento de %s", ap.StartTime.Format("02/01/2006 15:04")),
		Kind:   notification.KindAppointmentCancelled,
		RefID:  &ap.ID,
	})

	uc.audit.Dispatch(audit.Event{
		SalonID:  ap.SalonID,
		UserID:   &customerID,
		Action:   "appointment_cancelled_by_customer",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
