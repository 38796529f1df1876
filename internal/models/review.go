package models

import "time"

type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BoatID    uint    `gorm:"index;not null" json:"boat_id"`
	BookingID *string `gorm:"size:32" json:"booking_id"`
	UserID    uint    `gorm:"index;not null" json:"user_id"`
	UserName  string  `gorm:"size:150" json:"user_name"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"type:text" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
}
