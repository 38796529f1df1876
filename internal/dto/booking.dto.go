package dto

import (
	"time"

	domainbooking "github.com/BruksfildServices01/boat-rental/internal/domain/booking"
	"github.com/BruksfildServices01/boat-rental/internal/models"
)

type BookingDTO struct {
	ID     string `json:"id"`
	BoatID uint   `json:"boatId"`

	BoatName  string `json:"boatName"`
	BoatImage string `json:"boatImage"`

	OwnerID    uint   `json:"ownerId"`
	OwnerName  string `json:"ownerName"`
	OwnerEmail string `json:"ownerEmail"`
	OwnerPhone string `json:"ownerPhone"`

	RenterID    uint   `json:"renterId"`
	RenterName  string `json:"renterName"`
	RenterEmail string `json:"renterEmail"`
	RenterPhone string `json:"renterPhone"`

	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`

	DailyPrice float64 `json:"dailyPrice"`
	Subtotal   float64 `json:"subtotal"`
	ServiceFee float64 `json:"serviceFee"`
	TotalPrice float64 `json:"totalPrice"`

	Status          string     `json:"status"`
	PaymentIntentID string     `json:"paymentIntentId"`
	PaymentStatus   string     `json:"paymentStatus"`
	PaidAt          *time.Time `json:"paidAt"`

	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
	CancelledAt *time.Time `json:"cancelledAt"`
}

// NewBookingDTO expects Boat.Owner to be loaded. Stored renter contact
// wins over the renter account.
func NewBookingDTO(b *models.Booking) BookingDTO {
	out := BookingDTO{
		ID:              b.ID,
		BoatID:          b.BoatID,
		BoatName:        b.Boat.Name,
		BoatImage:       b.Boat.Image,
		OwnerID:         b.Boat.OwnerID,
		OwnerName:       b.Boat.Owner.Name,
		OwnerEmail:      b.Boat.Owner.Email,
		OwnerPhone:      b.Boat.Owner.Phone,
		RenterID:        b.RenterID,
		RenterName:      firstNonEmpty(b.RenterName, b.Renter.Name),
		RenterEmail:     firstNonEmpty(b.RenterEmail, b.Renter.Email),
		RenterPhone:     firstNonEmpty(b.RenterPhone, b.Renter.Phone),
		StartDate:       b.StartDate,
		EndDate:         b.EndDate,
		DailyPrice:      domainbooking.FromCents(b.DailyPriceCents),
		Subtotal:        domainbooking.FromCents(b.SubtotalCents),
		ServiceFee:      domainbooking.FromCents(b.ServiceFeeCents),
		TotalPrice:      domainbooking.FromCents(b.TotalPriceCents),
		Status:          b.Status,
		PaymentIntentID: b.PaymentIntentID,
		PaymentStatus:   b.PaymentStatus,
		PaidAt:          b.PaidAt,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
		CancelledAt:     b.CancelledAt,
	}
	return out
}

func NewBookingDTOs(list []models.Booking) []BookingDTO {
	out := make([]BookingDTO, 0, len(list))
	for i := range list {
		out = append(out, NewBookingDTO(&list[i]))
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
