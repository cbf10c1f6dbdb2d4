package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// ResolveWorkingWindow monta a grade efetiva de um dia. A grade do
// profissional, quando existe, SUBSTITUI a do salão por inteiro (não há
// mesclagem). Sem nenhuma linha configurada o dia é tratado como
// fechado — nunca aberto por omissão.
func ResolveWorkingWindow(
	ctx context.Context,
	repo domain.Repository,
	salonID uint,
	staffID *uint,
	date time.Time,
) (domain.WorkingWindow, error) {

	if _, err := repo.GetSalonByID(ctx, salonID); err != nil {
		return domain.WorkingWindow{}, httperr.ErrBusiness("salon_not_found")
	}

	weekday := int(date.Weekday())

	if staffID != nil {
		if wh, err := repo.GetWorkingHours(ctx, salonID, staffID, weekday); err == nil {
			return domain.BuildWindow(wh, date), nil
		}
	}

	wh, err := repo.GetWorkingHours(ctx, salonID, nil, weekday)
	if err != nil {
		return domain.ClosedWindow(date), nil
	}

	return domain.BuildWindow(wh, date), nil
}
