package appointment

import (
	"context"
	"errors"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

var errNotFound = errors.New("not found")

// fakeRepo simula o repositório em memória, incluindo a checagem de
// conflito que em produção roda dentro da transação.
type fakeRepo struct {
	salons       map[uint]*models.Salon
	staff        map[uint]*models.Staff
	services     map[uint]*models.Service
	hours        []models.WorkingHours
	appointments map[uint]*models.Appointment

	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		salons:       make(map[uint]*models.Salon),
		staff:        make(map[uint]*models.Staff),
		services:     make(map[uint]*models.Service),
		appointments: make(map[uint]*models.Appointment),
		nextID:       1,
	}
}

// seededRepo monta o cenário padrão dos testes: salão 1 do dono 10,
// profissional 2 ativo e serviço 3 de 60min, expediente 09:00–18:00
// com pausa 13:00–14:00 em todos os dias da semana.
func seededRepo() *fakeRepo {
	r := newFakeRepo()

	r.salons[1] = &models.Salon{ID: 1, OwnerID: 10, Name: "Studio Glow", Slug: "studio-glow"}
	r.staff[2] = &models.Staff{ID: 2, SalonID: 1, FullName: "Marina", Active: true}
	r.services[3] = &models.Service{ID: 3, SalonID: 1, Name: "Corte", DurationMin: 60, Price: 80, Active: true}

	for wd := 0; wd < 7; wd++ {
		r.hours = append(r.hours, models.WorkingHours{
			SalonID:    1,
			Weekday:    wd,
			OpenTime:   "09:00",
			CloseTime:  "18:00",
			BreakStart: "13:00",
			BreakEnd:   "14:00",
		})
	}

	return r
}

func seededStaff(id uint) *models.Staff {
	return &models.Staff{ID: id, SalonID: 1, FullName: "Profissional", Active: true}
}

func (r *fakeRepo) GetSalonByID(_ context.Context, id uint) (*models.Salon, error) {
	if s, ok := r.salons[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, errNotFound
}

func (r *fakeRepo) GetStaff(_ context.Context, salonID, staffID uint) (*models.Staff, error) {
	if s, ok := r.staff[staffID]; ok && s.SalonID == salonID && s.Active {
		cp := *s
		return &cp, nil
	}
	return nil, errNotFound
}

func (r *fakeRepo) ListActiveStaff(_ context.Context, salonID uint) ([]models.Staff, error) {
	var out []models.Staff
	for _, s := range r.staff {
		if s.SalonID == salonID && s.Active {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListServices(_ context.Context, salonID uint, serviceIDs []uint) ([]models.Service, error) {
	var out []models.Service
	for _, id := range serviceIDs {
		if s, ok := r.services[id]; ok && s.SalonID == salonID && s.Active {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetWorkingHours(_ context.Context, salonID uint, staffID *uint, weekday int) (*models.WorkingHours, error) {
	for i := range r.hours {
		wh := &r.hours[i]
		if wh.SalonID != salonID || wh.Weekday != weekday {
			continue
		}
		if staffID == nil && wh.StaffID == nil {
			cp := *wh
			return &cp, nil
		}
		if staffID != nil && wh.StaffID != nil && *staffID == *wh.StaffID {
			cp := *wh
			return &cp, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeRepo) ListActiveIntervalsForDay(_ context.Context, staffID uint, dayStart, dayEnd time.Time) ([]domain.Interval, error) {
	var out []domain.Interval
	for _, ap := range r.appointments {
		if ap.StaffID != staffID || r.inactive(ap.Status) {
			continue
		}
		if ap.StartTime.Before(dayStart) || !ap.StartTime.Before(dayEnd) {
			continue
		}
		out = append(out, domain.Interval{
			AppointmentID: ap.ID,
			Start:         ap.StartTime,
			End:           ap.EndTime,
		})
	}
	return out, nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if r.conflicts(ap.StaffID, ap.StartTime, ap.EndTime, 0) {
		return httperr.ErrBusiness("time_conflict")
	}

	ap.ID = r.nextID
	r.nextID++

	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) RescheduleAppointment(_ context.Context, ap *models.Appointment) error {
	if r.conflicts(ap.StaffID, ap.StartTime, ap.EndTime, ap.ID) {
		return httperr.ErrBusiness("time_conflict")
	}

	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := r.appointments[id]
	if !ok {
		return nil, errNotFound
	}

	cp := *ap
	if salon, ok := r.salons[ap.SalonID]; ok {
		cp.Salon = *salon
	}
	return &cp, nil
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if _, ok := r.appointments[ap.ID]; !ok {
		return errNotFound
	}

	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) ListAppointmentsByCustomer(_ context.Context, customerID uint, filter domain.ListFilter) ([]models.Appointment, int64, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.CustomerID != customerID {
			continue
		}
		if filter.Status != nil && ap.Status != string(*filter.Status) {
			continue
		}
		out = append(out, *ap)
	}
	return out, int64(len(out)), nil
}

func (r *fakeRepo) ListAppointmentsBySalon(_ context.Context, salonID uint, filter domain.ListFilter) ([]models.Appointment, int64, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.SalonID != salonID {
			continue
		}
		if filter.Status != nil && ap.Status != string(*filter.Status) {
			continue
		}
		out = append(out, *ap)
	}
	return out, int64(len(out)), nil
}

func (r *fakeRepo) inactive(status string) bool {
	for _, s := range domain.InactiveStatuses() {
		if status == string(s) {
			return true
		}
	}
	return false
}

func (r *fakeRepo) conflicts(staffID uint, start, end time.Time, excludeID uint) bool {
	var existing []domain.Interval
	for _, ap := range r.appointments {
		if ap.StaffID != staffID || r.inactive(ap.Status) {
			continue
		}
		existing = append(existing, domain.Interval{
			AppointmentID: ap.ID,
			Start:         ap.StartTime,
			End:           ap.EndTime,
		})
	}
	return domain.HasConflict(existing, start, end, excludeID)
}

var _ domain.Repository = (*fakeRepo)(nil)
