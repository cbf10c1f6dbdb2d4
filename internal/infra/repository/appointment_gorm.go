package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func inactiveStatuses() []string {
	in := domain.InactiveStatuses()
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, string(s))
	}
	return out
}

// --------------------------------------------------
// Salon / Staff / Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetSalonByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, id).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

func (r *AppointmentGormRepository) GetStaff(
	ctx context.Context,
	salonID uint,
	staffID uint,
) (*models.Staff, error) {

	var staff models.Staff
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ? AND active = true", staffID, salonID).
		First(&staff).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *AppointmentGormRepository) ListActiveStaff(
	ctx context.Context,
	salonID uint,
) ([]models.Staff, error) {

	var staff []models.Staff
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND active = true", salonID).
		Order("id ASC").
		Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *AppointmentGormRepository) ListServices(
	ctx context.Context,
	salonID uint,
	serviceIDs []uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND id IN ? AND active = true", salonID, serviceIDs).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Working hours
// --------------------------------------------------

func (r *AppointmentGormRepository) GetWorkingHours(
	ctx context.Context,
	salonID uint,
	staffID *uint,
	weekday int,
) (*models.WorkingHours, error) {

	q := r.db.WithContext(ctx).
		Where("salon_id = ? AND weekday = ?", salonID, weekday)

	if staffID != nil {
		q = q.Where("staff_id = ?", *staffID)
	} else {
		q = q.Where("staff_id IS NULL")
	}

	var wh models.WorkingHours
	if err := q.First(&wh).Error; err != nil {
		return nil, err
	}
	return &wh, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListActiveIntervalsForDay(
	ctx context.Context,
	staffID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]domain.Interval, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "start_time", "end_time").
		Where(
			"staff_id = ? AND status NOT IN ? AND start_time >= ? AND start_time < ?",
			staffID, inactiveStatuses(), dayStart, dayEnd,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	intervals := make([]domain.Interval, 0, len(apps))
	for _, ap := range apps {
		intervals = append(intervals, domain.Interval{
			AppointmentID: ap.ID,
			Start:         ap.StartTime,
			End:           ap.EndTime,
		})
	}
	return intervals, nil
}

// --------------------------------------------------
// Appointment (create / reschedule)
// --------------------------------------------------

// CreateAppointment executa checagem de conflito e insert (com os itens
// de serviço) numa única transação. O FOR UPDATE segura escritores
// concorrentes no mesmo horário; a exclusion constraint do banco é o
// backstop caso alguém passe por fora.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"staff_id = ? AND status NOT IN ? AND start_time < ? AND end_time > ?",
				ap.StaffID, inactiveStatuses(), ap.EndTime, ap.StartTime,
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness("time_conflict")
		}

		return tx.Create(ap).Error
	})

	if httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness("time_conflict")
	}
	return err
}

// RescheduleAppointment revalida o novo horário excluindo o próprio
// agendamento e grava na mesma transação.
func (r *AppointmentGormRepository) RescheduleAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var conflicts []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"staff_id = ? AND id <> ? AND status NOT IN ? AND start_time < ? AND end_time > ?",
				ap.StaffID, ap.ID, inactiveStatuses(), ap.EndTime, ap.StartTime,
			).
			Find(&conflicts).Error; err != nil {
			return err
		}

		if len(conflicts) > 0 {
			return httperr.ErrBusiness("time_conflict")
		}

		return tx.Omit(clause.Associations).Save(ap).Error
	})

	if httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness("time_conflict")
	}
	return err
}

// --------------------------------------------------
// Appointment (leitura / estado)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Salon").
		Preload("Staff").
		Preload("Customer").
		Preload("Services").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(ap).Error
}

func (r *AppointmentGormRepository) ListAppointmentsByCustomer(
	ctx context.Context,
	customerID uint,
	filter domain.ListFilter,
) ([]models.Appointment, int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("customer_id = ?", customerID)

	return r.list(q, filter, "date DESC, start_time DESC")
}

func (r *AppointmentGormRepository) ListAppointmentsBySalon(
	ctx context.Context,
	salonID uint,
	filter domain.ListFilter,
) ([]models.Appointment, int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("salon_id = ?", salonID)

	return r.list(q, filter, "date ASC, start_time ASC")
}

func (r *AppointmentGormRepository) list(
	q *gorm.DB,
	filter domain.ListFilter,
	order string,
) ([]models.Appointment, int64, error) {

	if filter.Status != nil {
		q = q.Where("status = ?", string(*filter.Status))
	}
	if filter.FromDate != nil {
		q = q.Where("date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		q = q.Where("date <= ?", *filter.ToDate)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 20
	}

	var apps []models.Appointment
	if err := q.
		Preload("Salon").
		Preload("Staff").
		Preload("Customer").
		Preload("Services").
		Order(order).
		Limit(size).
		Offset((page - 1) * size).
		Find(&apps).Error; err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
