package dto

import (
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type AppointmentServiceItemDTO struct {
	ServiceID   uint    `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
}

type AppointmentDTO struct {
	ID   uint   `json:"id"`
	Code string `json:"code"`

	SalonID   uint   `json:"salon_id"`
	SalonName string `json:"salon_name"`

	StaffID   uint   `json:"staff_id"`
	StaffName string `json:"staff_name"`

	CustomerID uint `json:"customer_id"`

	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`

	Status string `json:"status"`

	TotalPrice       float64 `json:"total_price"`
	TotalDurationMin int     `json:"total_duration_min"`

	CustomerNote       string `json:"customer_note,omitempty"`
	SalonNote          string `json:"salon_note,omitempty"`
	CancellationReason string `json:"cancellation_reason,omitempty"`

	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	Services []AppointmentServiceItemDTO `json:"services"`
}

func FromAppointment(ap *models.Appointment) AppointmentDTO {
	out := AppointmentDTO{
		ID:   ap.ID,
		Code: ap.Code,

		SalonID:   ap.SalonID,
		SalonName: ap.Salon.Name,

		StaffID:   ap.StaffID,
		StaffName: ap.Staff.FullName,

		CustomerID: ap.CustomerID,

		Date:      ap.Date.Format("2006-01-02"),
		StartTime: ap.StartTime.Format("15:04"),
		EndTime:   ap.EndTime.Format("15:04"),

		Status: ap.Status,

		TotalPrice:       ap.TotalPrice,
		TotalDurationMin: ap.TotalDurationMin,

		CustomerNote:       ap.CustomerNote,
		SalonNote:          ap.SalonNote,
		CancellationReason: ap.CancellationReason,

		ConfirmedAt: ap.ConfirmedAt,
		CancelledAt: ap.CancelledAt,
		CompletedAt: ap.CompletedAt,
	}

	for _, item := range ap.Services {
		out.Services = append(out.Services, AppointmentServiceItemDTO{
			ServiceID:   item.ServiceID,
			ServiceName: item.ServiceName,
			Price:       item.Price,
			DurationMin: item.DurationMin,
		})
	}

	return out
}

type TimeSlotDTO struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}

type StaffSlotsDTO struct {
	StaffID   uint          `json:"staff_id"`
	StaffName string        `json:"staff_name"`
	Date      string        `json:"date"`
	Slots     []TimeSlotDTO `json:"slots"`
}

func FromStaffSlots(in []domain.StaffSlots) []StaffSlotsDTO {
	out := make([]StaffSlotsDTO, 0, len(in))
	for _, ss := range in {
		dto := StaffSlotsDTO{
			StaffID:   ss.StaffID,
			StaffName: ss.StaffName,
			Date:      ss.Date.Format("2006-01-02"),
		}
		for _, slot := range ss.Slots {
			dto.Slots = append(dto.Slots, TimeSlotDTO{
				Start:     slot.Start.Format("15:04"),
				End:       slot.End.Format("15:04"),
				Available: slot.Available,
			})
		}
		out = append(out, dto)
	}
	return out
}
