package models

import "time"

type Appointment struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"size:36;uniqueIndex" json:"code"`

	SalonID uint  `json:"salon_id"`
	Salon   Salon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"salon"`

	StaffID uint  `gorm:"index" json:"staff_id"`
	Staff   Staff `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"staff"`

	CustomerID uint `gorm:"index" json:"customer_id"`
	Customer   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	Date      time.Time `gorm:"index" json:"date"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	TotalPrice       float64 `json:"total_price"`
	TotalDurationMin int     `json:"total_duration_min"`

	Status string `gorm:"size:30;default:'pending'" json:"status"`

	CustomerNote       string `gorm:"size:255" json:"customer_note"`
	SalonNote          string `gorm:"size:255" json:"salon_note"`
	CancellationReason string `gorm:"size:255" json:"cancellation_reason"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	// Snapshot dos serviços no momento da reserva
	Services []AppointmentServiceItem `json:"services"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppointmentServiceItem congela nome/preço/duração do serviço no ato
// da reserva. Edições posteriores no catálogo não alteram o histórico.
type AppointmentServiceItem struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	AppointmentID uint `gorm:"index" json:"appointment_id"`

	ServiceID   uint    `json:"service_id"`
	ServiceName string  `gorm:"size:100" json:"service_name"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`

	CreatedAt time.Time `json:"created_at"`
}
