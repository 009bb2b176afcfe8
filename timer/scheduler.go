package timer

import (
	"sync"
	"time"
)

// Cancel tears down a scheduled interval. Calling it more than once is safe.
type Cancel func()

// Scheduler runs fn every d until the returned Cancel is called.
type Scheduler interface {
	Every(d time.Duration, fn func()) Cancel
}

// TickerScheduler is the Scheduler backed by time.Ticker.
type TickerScheduler struct{}

// Every starts a goroutine that calls fn on each tick. The goroutine exits
// once the returned Cancel runs.
func (TickerScheduler) Every(d time.Duration, fn func()) Cancel {
	ticker := time.NewTicker(d)
	stopCh := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(stopCh) })
	}
}
