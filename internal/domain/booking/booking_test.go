package booking

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/boat-rental/internal/domain/period"
	"github.com/BruksfildServices01/boat-rental/internal/httperr"
	"github.com/BruksfildServices01/boat-rental/internal/models"
)

func TestNewIDFormat(t *testing.T) {
	now := time.Date(2024, time.July, 1, 23, 30, 0, 0, time.FixedZone("X", -3*3600))
	id := NewID(now)

	// UTC date: the local time is already July 2nd in UTC.
	assert.Regexp(t, regexp.MustCompile(`^BK20240702-[0-9a-f]{8}$`), id)
	assert.LessOrEqual(t, len(id), 32)
}

func TestNewPaymentIntentID(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^pi_[0-9a-f]{32}$`), NewPaymentIntentID())
}

func TestQuote(t *testing.T) {
	start := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

	p := Quote(period.Range{Start: start, End: start.AddDate(0, 0, 7)}, ToCents(100), ToCents(50))
	assert.Equal(t, int64(70000), p.SubtotalCents)
	assert.Equal(t, int64(75000), p.TotalCents)

	half := Quote(period.Range{Start: start, End: start.Add(36 * time.Hour)}, ToCents(99.99), 0)
	assert.Equal(t, int64(14999), half.SubtotalCents, "1.5 days rounded to the cent")
}

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus(" Confirmed ")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, st)

	_, err = ParseStatus("archived")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidStatus))
}

func TestCancel(t *testing.T) {
	now := time.Now()

	b := &models.Booking{Status: string(StatusConfirmed)}
	changed, err := Cancel(b, now)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, string(StatusCancelled), b.Status)
	require.NotNil(t, b.CancelledAt)

	changed, err = Cancel(b, now.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, changed, "second cancel is a no-op")
	assert.Equal(t, now, *b.CancelledAt)

	done := &models.Booking{Status: string(StatusCompleted)}
	_, err = Cancel(done, now)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
}

func TestSetStatusRejectsTerminal(t *testing.T) {
	for _, st := range []Status{StatusCancelled, StatusCompleted} {
		b := &models.Booking{Status: string(st)}
		err := SetStatus(b, StatusConfirmed, time.Now())
		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState), st)
	}

	b := &models.Booking{Status: string(StatusPending)}
	require.NoError(t, SetStatus(b, StatusConfirmed, time.Now()))
	assert.Equal(t, string(StatusConfirmed), b.Status)
	assert.NotNil(t, b.UpdatedAt)
}
