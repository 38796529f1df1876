package audit

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
	block  chan struct{}
	fail   bool
}

func (s *recordingSink) Log(_ context.Context, ev Event) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	if s.fail {
		return errors.New("db down")
	}
	return nil
}

func TestDispatcher_DeliversOnClose(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, nil)

	for i := 0; i < 10; i++ {
		d.Dispatch(Event{Action: "booking_created"})
	}
	d.Close()
	d.Close()

	assert.Len(t, sink.events, 10)
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	sink := &recordingSink{block: make(chan struct{})}
	d := NewDispatcher(sink, zap.New(core))

	// one event may already sit in the worker
	for i := 0; i < cap(d.queue)+5; i++ {
		d.Dispatch(Event{Action: "period_blocked"})
	}
	assert.NotZero(t, logs.FilterMessage("audit queue full, dropping event").Len())

	close(sink.block)
	d.Close()
	assert.LessOrEqual(t, len(sink.events), cap(d.queue)+1)
}

func TestDispatcher_SinkErrorsAreLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	d := NewDispatcher(&recordingSink{fail: true}, zap.New(core))

	d.Dispatch(Event{Action: "review_deleted", EntityID: "5"})
	d.Close()

	require.Equal(t, 1, logs.FilterMessage("audit write failed").Len())
}

func TestDispatcher_NilIsSafe(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: "x"})
		d.Close()
	})
}

func TestDispatcher_DispatchAfterCloseIsDropped(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	sink := &recordingSink{}
	d := NewDispatcher(sink, zap.New(core))

	d.Dispatch(Event{Action: "booking_created"})
	d.Close()

	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: "booking_cancelled"})
	})
	assert.Len(t, sink.events, 1)
	assert.Equal(t, 1, logs.FilterMessage("audit dispatcher closed, dropping event").Len())
}

func TestDispatcher_CloseWhileDispatching(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				d.Dispatch(Event{Action: "period_blocked"})
			}
		}()
	}
	assert.NotPanics(t, d.Close)
	wg.Wait()

	sink.mu.Lock()
	defer sink.mu.Unlock()
	assert.LessOrEqual(t, len(sink.events), 8*50)
}

func TestEntry(t *testing.T) {
	uid := uint(4)
	row := Entry(Event{
		UserID:   &uid,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: "BK20240701-0a1b2c3d",
		Metadata: map[string]any{"boat_id": 10},
	})

	assert.Equal(t, &uid, row.UserID)
	assert.Equal(t, "booking", row.Entity)

	var meta map[string]any
	require.NoError(t, json.Unmarshal([]byte(row.Metadata), &meta))
	assert.EqualValues(t, 10, meta["boat_id"])

	assert.Empty(t, Entry(Event{Action: "x"}).Metadata)
}
