package models

import "time"

// Grade semanal do salão. StaffID nulo = grade padrão do salão;
// quando preenchido, a linha substitui (não mescla) a grade padrão
// para aquele profissional naquele dia.
type WorkingHours struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	SalonID uint  `gorm:"index" json:"salon_id"`
	StaffID *uint `gorm:"index" json:"staff_id"`

	Weekday int `json:"weekday"`

	OpenTime   string `json:"open_time"`
	CloseTime  string `json:"close_time"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
	Closed     bool   `json:"closed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
