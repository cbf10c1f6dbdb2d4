package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ListSalonAppointments struct {
	repo domain.Repository
}

func NewListSalonAppointments(repo domain.Repository) *ListSalonAppointments {
	return &ListSalonAppointments{repo: repo}
}

func (uc *ListSalonAppointments) Execute(
	ctx context.Context,
	salonID uint,
	actorID uint,
	filter domain.ListFilter,
) ([]models.Appointment, int64, error) {

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, 0, httperr.ErrBusiness("salon_not_found")
	}

	if salon.OwnerID != actorID {
		return nil, 0, httperr.ErrBusiness("forbidden")
	}

	return uc.repo.ListAppointmentsBySalon(ctx, salonID, filter)
}
