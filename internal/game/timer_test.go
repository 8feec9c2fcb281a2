package game

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoundTimer_CountsDownAndExpiresOnce(t *testing.T) {
	ticks := make(chan int, 8)
	var expiries atomic.Int32

	startRoundTimer(2,
		func(remaining int) { ticks <- remaining },
		func() { expiries.Add(1) },
	)

	collect := func() int {
		select {
		case n := <-ticks:
			return n
		case <-time.After(2 * time.Second):
			t.Fatal("timer stopped ticking")
			return -1
		}
	}

	assert.Equal(t, 1, collect())
	assert.Equal(t, 0, collect())

	// Expiry fires exactly once, then the goroutine stops.
	time.Sleep(1500 * time.Millisecond)
	assert.Equal(t, int32(1), expiries.Load())
	assert.Empty(t, ticks)
}

func TestRoundTimer_CancelStopsTicksAndExpiry(t *testing.T) {
	var ticks, expiries atomic.Int32

	timer := startRoundTimer(5,
		func(int) { ticks.Add(1) },
		func() { expiries.Add(1) },
	)
	timer.Cancel()

	time.Sleep(1500 * time.Millisecond)
	assert.Equal(t, int32(0), ticks.Load())
	assert.Equal(t, int32(0), expiries.Load())
}

func TestRoundTimer_CancelIsIdempotent(t *testing.T) {
	timer := startRoundTimer(5, func(int) {}, func() {})

	assert.NotPanics(t, func() {
		timer.Cancel()
		timer.Cancel()
		timer.Cancel()
	})
}

func TestRoundTimer_CancelAfterExpiryIsSafe(t *testing.T) {
	done := make(chan struct{})
	timer := startRoundTimer(1, func(int) {}, func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timer never expired")
	}

	assert.NotPanics(t, func() { timer.Cancel() })
}
