package booking

import (
	"math"

	"github.com/BruksfildServices01/boat-rental/internal/domain/period"
)

type Price struct {
	DailyCents      int64
	SubtotalCents   int64
	ServiceFeeCents int64
	TotalCents      int64
}

// Quote prices r at dailyCents per elapsed day. Partial days are billed
// pro rata and rounded to the cent.
func Quote(r period.Range, dailyCents, feeCents int64) Price {
	subtotal := int64(math.Round(float64(dailyCents) * r.Days()))
	return Price{
		DailyCents:      dailyCents,
		SubtotalCents:   subtotal,
		ServiceFeeCents: feeCents,
		TotalCents:      subtotal + feeCents,
	}
}

func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func FromCents(cents int64) float64 {
	return float64(cents) / 100
}
