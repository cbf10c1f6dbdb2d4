package models

import "time"

type Staff struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	SalonID uint  `gorm:"index" json:"salon_id"`
	Salon   Salon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	FullName string `gorm:"size:100;not null" json:"full_name"`
	Title    string `gorm:"size:100" json:"title"`
	Active   bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
