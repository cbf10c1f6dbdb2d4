package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ListFilter struct {
	Status   *Status
	FromDate *time.Time
	ToDate   *time.Time
	Page     int
	PageSize int
}

type Repository interface {
	// -------- Salon / Staff / Service (diretório, só leitura) --------
	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	GetStaff(
		ctx context.Context,
		salonID uint,
		staffID uint,
	) (*models.Staff, error)

	ListActiveStaff(
		ctx context.Context,
		salonID uint,
	) ([]models.Staff, error)

	ListServices(
		ctx context.Context,
		salonID uint,
		serviceIDs []uint,
	) ([]models.Service, error)

	// -------- Working hours --------
	// staffID nulo busca a grade padrão do salão.
	GetWorkingHours(
		ctx context.Context,
		salonID uint,
		staffID *uint,
		weekday int,
	) (*models.WorkingHours, error)

	// -------- Availability --------
	ListActiveIntervalsForDay(
		ctx context.Context,
		staffID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]Interval, error)

	// -------- Appointment (create / reschedule, atômicos) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	RescheduleAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (leitura / mudança de estado) --------
	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointmentsByCustomer(
		ctx context.Context,
		customerID uint,
		filter ListFilter,
	) ([]models.Appointment, int64, error)

	ListAppointmentsBySalon(
		ctx context.Context,
		salonID uint,
		filter ListFilter,
	) ([]models.Appointment, int64, error)
}
