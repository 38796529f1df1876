package models

import "time"

// BoatAvailability is a stored period for a boat. Most rows mark the boat
// unavailable: owner blocks, maintenance, or the period held by a booking.
type BoatAvailability struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BoatID uint `gorm:"index:idx_availability_boat_range,priority:1;not null" json:"boat_id"`
	Boat   Boat `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	StartDate time.Time `gorm:"index:idx_availability_boat_range,priority:2;not null" json:"start_date"`
	EndDate   time.Time `gorm:"index:idx_availability_boat_range,priority:3;not null" json:"end_date"`

	IsAvailable bool   `gorm:"default:false" json:"is_available"`
	Reason      string `gorm:"size:255" json:"reason"`
	Details     string `gorm:"type:text" json:"details"`

	ReferenceType *string `gorm:"size:20;index:idx_availability_reference,priority:1" json:"reference_type"`
	ReferenceID   *string `gorm:"size:32;index:idx_availability_reference,priority:2" json:"reference_id"`

	CreatedAt time.Time `json:"created_at"`
}

func (BoatAvailability) TableName() string {
	return "boat_availabilities"
}
