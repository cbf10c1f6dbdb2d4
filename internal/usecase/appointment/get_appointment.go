package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

// Só o cliente e o dono do salão enxergam o agendamento.
func (uc *GetAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	actorID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if ap.CustomerID != actorID && ap.Salon.OwnerID != actorID {
		return nil, httperr.ErrBusiness("forbidden")
	}

	return ap, nil
}
