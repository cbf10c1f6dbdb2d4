package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type CompleteAppointment struct {
	repo    domain.Repository
	machine domain.Machine
	audit   *audit.Dispatcher
}

func NewCompleteAppointment(
	repo domain.Repository,
	machine domain.Machine,
	auditDisp *audit.Dispatcher,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:    repo,
		machine: machine,
		audit:   auditDisp,
	}
}

// Execute fecha o ciclo do agendamento. É o status "completed" que
// libera o cliente para avaliar o atendimento.
func (uc *CompleteAppointment) Execute(
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

	if err := uc.machine.Complete(ap, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  ap.SalonID,
		UserID:   &actorID,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
