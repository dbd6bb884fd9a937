package sched

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleOnceFiresAtDueTime(t *testing.T) {
	s := New(0)
	fired := 0
	s.ScheduleOnce(2500*time.Millisecond, func() { fired++ })

	s.Advance(2499)
	assert.Equal(t, 0, fired)

	s.Advance(2500)
	assert.Equal(t, 1, fired)

	s.Advance(10000)
	assert.Equal(t, 1, fired, "one-shot timers fire once")
	assert.Equal(t, 0, s.Pending())
}

func TestScheduleRepeatingCatchesUp(t *testing.T) {
	s := New(0)
	var at []float64
	s.ScheduleRepeating(100*time.Millisecond, func() { at = append(at, s.Now()) })

	s.Advance(350)
	assert.Equal(t, []float64{100, 200, 300}, at)
	assert.Equal(t, 350.0, s.Now())
	assert.Equal(t, 1, s.Pending())
}

func TestCancelDiscardsPendingTimer(t *testing.T) {
	s := New(0)
	fired := false
	h := s.ScheduleRepeating(time.Second, func() { fired = true })

	assert.True(t, s.Cancel(h))
	assert.False(t, s.Cancel(h), "second cancel is a no-op")
	assert.False(t, s.Cancel(0), "zero handle is never issued")

	s.Advance(5000)
	assert.False(t, fired)
}

func TestRescheduleInsideCallback(t *testing.T) {
	s := New(0)
	var fires []float64
	var h Handle
	var tick func()
	tick = func() {
		fires = append(fires, s.Now())
		if len(fires) == 1 {
			// Replace the running timer with a shorter period
			s.Cancel(h)
			h = s.ScheduleRepeating(50*time.Millisecond, tick)
		}
	}
	h = s.ScheduleRepeating(100*time.Millisecond, tick)

	s.Advance(260)
	assert.Equal(t, []float64{100, 150, 200, 250}, fires)
	assert.Equal(t, 1, s.Pending())
}

func TestChainedDelaysAreExact(t *testing.T) {
	s := New(0)
	var showAt, returnAt float64
	s.ScheduleOnce(2500*time.Millisecond, func() {
		showAt = s.Now()
		s.ScheduleOnce(3500*time.Millisecond, func() { returnAt = s.Now() })
	})

	// Coarse frames never land exactly on the due times
	for now := 0.0; now <= 7000; now += 16.7 {
		s.Advance(now)
	}
	assert.Equal(t, 2500.0, showAt)
	assert.Equal(t, 6000.0, returnAt)
}

func TestCallbackCancelsSiblingDueSameFrame(t *testing.T) {
	s := New(0)
	secondFired := false
	var second Handle
	s.ScheduleOnce(10*time.Millisecond, func() { s.Cancel(second) })
	second = s.ScheduleOnce(20*time.Millisecond, func() { secondFired = true })

	s.Advance(100)
	assert.False(t, secondFired)
}

func TestTiesFireInRegistrationOrder(t *testing.T) {
	s := New(0)
	var order []string
	s.ScheduleOnce(10*time.Millisecond, func() { order = append(order, "a") })
	s.ScheduleOnce(10*time.Millisecond, func() { order = append(order, "b") })
	s.ScheduleOnce(5*time.Millisecond, func() { order = append(order, "c") })

	s.Advance(10)
	require.Len(t, order, 3)
	assert.Equal(t, []string{"c", "a", "b"}, order)
}

func TestAdvanceBackwardsIgnored(t *testing.T) {
	s := New(1000)
	s.Advance(500)
	assert.Equal(t, 1000.0, s.Now())
}
