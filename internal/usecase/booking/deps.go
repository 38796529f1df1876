package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/boat-rental/internal/audit"
	domainavailability "github.com/BruksfildServices01/boat-rental/internal/domain/availability"
	domain "github.com/BruksfildServices01/boat-rental/internal/domain/booking"
	"github.com/BruksfildServices01/boat-rental/internal/models"
)

const defaultWriteTimeout = 10 * time.Second

// Deps are the collaborators shared by the booking use cases. Only Repo is
// required.
type Deps struct {
	Repo     domain.Repository
	Cache    domainavailability.Cache
	Notifier domain.Notifier
	Audit    *audit.Dispatcher
	Log      *zap.Logger

	// WriteTimeout bounds the persist step, which outlives the request.
	WriteTimeout time.Duration
	Now          func() time.Time
}

func (d Deps) withDefaults() Deps {
	if d.Cache == nil {
		d.Cache = domainavailability.NopCache{}
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.WriteTimeout <= 0 {
		d.WriteTimeout = defaultWriteTimeout
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

// detached returns a context that survives the caller going away.
func (d Deps) detached(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), d.WriteTimeout)
}

func summaryOf(b *models.Booking, at time.Time) domain.Summary {
	renterName := b.RenterName
	if renterName == "" {
		renterName = b.Renter.Name
	}
	return domain.Summary{
		BookingID:  b.ID,
		BoatID:     b.BoatID,
		BoatName:   b.Boat.Name,
		RenterID:   b.RenterID,
		RenterName: renterName,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		TotalPrice: domain.FromCents(b.TotalPriceCents),
		At:         at,
	}
}

// notifyAdmins is best-effort: failures are logged and swallowed.
func (d Deps) notifyAdmins(
	ctx context.Context,
	event string,
	b *models.Booking,
	send func(ctx context.Context, recipients []string, s domain.Summary) error,
) {
	admins, err := d.Repo.ListAdminEmails(ctx)
	if err != nil {
		d.Log.Warn("resolve admin recipients failed",
			zap.String("event", event),
			zap.String("booking_id", b.ID),
			zap.Error(err),
		)
		return
	}
	d.send(ctx, event, b, admins, send)
}

func (d Deps) send(
	ctx context.Context,
	event string,
	b *models.Booking,
	recipients []string,
	send func(ctx context.Context, recipients []string, s domain.Summary) error,
) {
	if len(recipients) == 0 {
		return
	}
	if err := send(ctx, recipients, summaryOf(b, d.Now())); err != nil {
		d.Log.Warn("booking notification failed",
			zap.String("event", event),
			zap.String("booking_id", b.ID),
			zap.Error(err),
		)
	}
}
