package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogNotifier(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := NewLogNotifier(zap.New(core))

	assert.NoError(t, n.ReservationApproved(context.Background(), []string{"admin@example.com"}, summary()))

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, EventReservationApproved, entries[0].ContextMap()["event"])
	}
}
