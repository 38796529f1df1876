package dto

import (
	"time"

	domainavailability "github.com/BruksfildServices01/boat-rental/internal/domain/availability"
	"github.com/BruksfildServices01/boat-rental/internal/models"
)

type UnavailablePeriodDTO struct {
	Type        string    `json:"type"`
	ReferenceID *string   `json:"referenceId"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Reason      string    `json:"reason"`
	Details     string    `json:"details"`
}

func NewUnavailablePeriodDTOs(periods []domainavailability.Period) []UnavailablePeriodDTO {
	out := make([]UnavailablePeriodDTO, 0, len(periods))
	for _, p := range periods {
		out = append(out, UnavailablePeriodDTO{
			Type:        string(p.Type),
			ReferenceID: p.Reference.Ptr(),
			StartDate:   p.Start,
			EndDate:     p.End,
			Reason:      p.Reason,
			Details:     p.Details,
		})
	}
	return out
}

// PeriodDTO is a stored period as returned by the write endpoints.
type PeriodDTO struct {
	ID            uint      `json:"id"`
	BoatID        uint      `json:"boatId"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	IsAvailable   bool      `json:"isAvailable"`
	Reason        string    `json:"reason"`
	Details       string    `json:"details"`
	ReferenceType *string   `json:"referenceType"`
	ReferenceID   *string   `json:"referenceId"`
	CreatedAt     time.Time `json:"createdAt"`
}

func NewPeriodDTO(a *models.BoatAvailability) PeriodDTO {
	return PeriodDTO{
		ID:            a.ID,
		BoatID:        a.BoatID,
		StartDate:     a.StartDate,
		EndDate:       a.EndDate,
		IsAvailable:   a.IsAvailable,
		Reason:        a.Reason,
		Details:       a.Details,
		ReferenceType: a.ReferenceType,
		ReferenceID:   a.ReferenceID,
		CreatedAt:     a.CreatedAt,
	}
}
