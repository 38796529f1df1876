package models

import (
	"time"

	"gorm.io/gorm"
)

type Boat struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:150;not null" json:"name"`
	Type     string `gorm:"size:50" json:"type"`
	Location string `gorm:"size:150" json:"location"`
	Image    string `gorm:"size:512" json:"image"`

	DailyPriceCents int64 `gorm:"not null;default:0" json:"-"`
	Capacity        int   `json:"capacity"`

	// Rating and ReviewCount are recomputed from reviews on every review write.
	Rating      float64 `gorm:"type:numeric(4,2);default:0" json:"rating"`
	ReviewCount int     `gorm:"default:0" json:"review_count"`

	OwnerID uint `gorm:"index;not null" json:"owner_id"`
	Owner   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"owner"`

	IsActive   bool `gorm:"default:false" json:"is_active"`
	IsVerified bool `gorm:"default:false" json:"is_verified"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Rentable reports whether the boat may take new bookings.
func (b *Boat) Rentable() bool {
	return b.IsActive && b.IsVerified && !b.DeletedAt.Valid
}
