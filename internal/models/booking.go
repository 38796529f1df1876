package models

import "time"

type Booking struct {
	ID string `gorm:"primaryKey;size:32" json:"id"`

	BoatID uint `gorm:"index:idx_bookings_boat_range,priority:1;not null" json:"boat_id"`
	Boat   Boat `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"boat"`

	RenterID uint `gorm:"index;not null" json:"renter_id"`
	Renter   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	StartDate time.Time `gorm:"index:idx_bookings_boat_range,priority:2;not null" json:"start_date"`
	EndDate   time.Time `gorm:"index:idx_bookings_boat_range,priority:3;not null" json:"end_date"`

	DailyPriceCents int64 `gorm:"not null" json:"daily_price_cents"`
	SubtotalCents   int64 `gorm:"not null" json:"subtotal_cents"`
	ServiceFeeCents int64 `gorm:"not null" json:"service_fee_cents"`
	TotalPriceCents int64 `gorm:"not null" json:"total_price_cents"`

	Status string `gorm:"size:20;not null;default:'pending';index" json:"status"`

	RenterName  string `gorm:"size:150" json:"renter_name"`
	RenterEmail string `gorm:"size:150" json:"renter_email"`
	RenterPhone string `gorm:"size:30" json:"renter_phone"`

	PaymentIntentID string     `gorm:"size:64" json:"payment_intent_id"`
	PaymentStatus   string     `gorm:"size:20" json:"payment_status"`
	PaidAt          *time.Time `json:"paid_at"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
}
