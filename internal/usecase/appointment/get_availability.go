package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository

	granularity time.Duration
	leadTime    time.Duration

	nowFn func() time.Time
}

func NewGetAvailability(repo domain.Repository, cfg *config.Config) *GetAvailability {
	return &GetAvailability{
		repo:        repo,
		granularity: time.Duration(cfg.SlotGranularityMinutes) * time.Minute,
		leadTime:    time.Duration(cfg.MinLeadTimeMinutes) * time.Minute,
		nowFn:       timezone.Now,
	}
}

// Execute devolve, por profissional, a lista ordenada de slots do dia
// com a flag de disponibilidade já resolvida. Geração e checagem de
// conflito são passadas separadas: os candidatos dependem só da grade
// e da duração, a flag vem dos agendamentos ativos.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.StaffSlots, error) {

	if _, err := uc.repo.GetSalonByID(ctx, in.SalonID); err != nil {
		return nil, httperr.ErrBusiness("salon_not_found")
	}

	if len(in.ServiceIDs) == 0 {
		return nil, httperr.ErrBusiness("empty_services")
	}

	// Mesma regra do Create: todo ID pedido precisa resolver, senão a
	// duração sairia parcial e os slots anunciados seriam recusados na
	// hora de reservar.
	services, err := uc.repo.ListServices(ctx, in.SalonID, in.ServiceIDs)
	if err != nil || len(services) != len(in.ServiceIDs) {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	totalDuration := sumDuration(services)

	var staffList []models.Staff
	if in.StaffID != nil {
		staff, err := uc.repo.GetStaff(ctx, in.SalonID, *in.StaffID)
		if err != nil {
			return nil, httperr.ErrBusiness("staff_not_found")
		}
		staffList = []models.Staff{*staff}
	} else {
		staffList, err = uc.repo.ListActiveStaff(ctx, in.SalonID)
		if err != nil {
			return nil, err
		}
	}

	now := uc.nowFn()
	dayStart := startOfDay(in.Date)
	dayEnd := dayStart.Add(24 * time.Hour)

	result := make([]domain.StaffSlots, 0, len(staffList))

	for _, staff := range staffList {
		staffID := staff.ID

		window, err := ResolveWorkingWindow(ctx, uc.repo, in.SalonID, &staffID, in.Date)
		if err != nil {
			return nil, err
		}

		slots := domain.GenerateSlots(window, totalDuration, uc.granularity, uc.leadTime, now)
		if len(slots) == 0 {
			continue
		}

		intervals, err := uc.repo.ListActiveIntervalsForDay(ctx, staffID, dayStart, dayEnd)
		if err != nil {
			return nil, err
		}

		domain.MarkAvailability(slots, intervals)

		result = append(result, domain.StaffSlots{
			StaffID:   staff.ID,
			StaffName: staff.FullName,
			Date:      in.Date,
			Slots:     slots,
		})
	}

	return result, nil
}

func sumDuration(services []models.Service) time.Duration {
	total := 0
	for _, s := range services {
		total += s.DurationMin
	}
	return time.Duration(total) * time.Minute
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
