package models

import "time"

type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index" json:"user_id"`

	Title string `gorm:"size:100" json:"title"`
	Body  string `gorm:"size:255" json:"body"`
	Kind  string `gorm:"size:30" json:"kind"`
	RefID *uint  `json:"ref_id"`

	Read bool `gorm:"default:false" json:"read"`

	CreatedAt time.Time `json:"created_at"`
}
