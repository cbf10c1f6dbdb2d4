package models

import "time"

type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SalonID       uint `gorm:"index" json:"salon_id"`
	AppointmentID uint `gorm:"uniqueIndex" json:"appointment_id"`
	CustomerID    uint `json:"customer_id"`

	Rating  int    `json:"rating"`
	Comment string `gorm:"size:500" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
