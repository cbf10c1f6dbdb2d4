package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type MarkNoShow struct {
	repo    domain.Repository
	machine domain.Machine
	audit   *audit.Dispatcher
}

func NewMarkNoShow(
	repo domain.Repository,
	machine domain.Machine,
	auditDisp *audit.Dispatcher,
) *MarkNoShow {
	return &MarkNoShow{
		repo:    repo,
		machine: machine,
		audit:   auditDisp,
	}
}

func (uc *MarkNoShow) Execute(
	ctx context.Context,
	appointmentID uint,
	actorID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if ap.Salon.OwnerID != actorID {
		return nil, httperr.ErrBusiness("forbidden")
	}

	if err := uc.machine.MarkNoShow(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  ap.SalonID,
		UserID:   &actorID,
		Action:   "appointment_no_show",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
