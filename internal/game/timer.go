package game

import (
	"sync"
	"time"
)

// roundTimer counts a turn down one second at a time. It only produces
// tick/expiry signals; every state change happens in the room handlers it
// calls into, which validate the turn they were scheduled for.
type roundTimer struct {
	cancel   chan struct{}
	stopOnce sync.Once
}

func startRoundTimer(seconds int, onTick func(remaining int), onExpire func()) *roundTimer {
	t := &roundTimer{cancel: make(chan struct{})}
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		remaining := seconds
		for {
			select {
			case <-t.cancel:
				return
			case <-ticker.C:
				remaining--
				onTick(remaining)
				if remaining <= 0 {
					onExpire()
					return
				}
			}
		}
	}()
	return t
}

// Cancel is idempotent and safe on an already-expired timer.
func (t *roundTimer) Cancel() {
	t.stopOnce.Do(func() {
		close(t.cancel)
	})
}
