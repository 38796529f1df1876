package notify

import (
	"context"

	"go.uber.org/zap"

	domainbooking "github.com/BruksfildServices01/boat-rental/internal/domain/booking"
)

// LogNotifier writes events to the log. Used when no brokers are configured.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) ReservationCreated(ctx context.Context, recipients []string, s domainbooking.Summary) error {
	n.write(EventReservationCreated, recipients, s)
	return nil
}

func (n *LogNotifier) ReservationApproved(ctx context.Context, recipients []string, s domainbooking.Summary) error {
	n.write(EventReservationApproved, recipients, s)
	return nil
}

func (n *LogNotifier) Cancellation(ctx context.Context, recipients []string, s domainbooking.Summary) error {
	n.write(EventCancellation, recipients, s)
	return nil
}

func (n *LogNotifier) write(event string, recipients []string, s domainbooking.Summary) {
	n.log.Info("booking notification",
		zap.String("event", event),
		zap.Strings("recipients", recipients),
		zap.String("booking_id", s.BookingID),
		zap.Uint("boat_id", s.BoatID),
		zap.Time("start", s.StartDate),
		zap.Time("end", s.EndDate),
		zap.Float64("total", s.TotalPrice),
	)
}

var _ domainbooking.Notifier = (*LogNotifier)(nil)
