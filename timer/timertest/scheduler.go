// Package timertest provides a deterministic Scheduler for tests.
package timertest

import (
	"sync"
	"time"

	"pomodoro/timer"
)

type job struct {
	fn     func()
	active bool
}

// ManualScheduler only fires callbacks when Advance is called.
type ManualScheduler struct {
	mu        sync.Mutex
	jobs      []*job
	scheduled int
}

// Every registers fn. The interval is ignored: each Advance step is one
// period.
func (m *ManualScheduler) Every(_ time.Duration, fn func()) timer.Cancel {
	j := &job{fn: fn, active: true}
	m.mu.Lock()
	m.jobs = append(m.jobs, j)
	m.scheduled++
	m.mu.Unlock()
	return func() {
		m.mu.Lock()
		j.active = false
		m.mu.Unlock()
	}
}

// Advance fires every active callback n times, one period at a time.
func (m *ManualScheduler) Advance(n int) {
	for i := 0; i < n; i++ {
		for _, fn := range m.activeFuncs() {
			fn()
		}
	}
}

// Active returns the number of intervals not yet cancelled.
func (m *ManualScheduler) Active() int {
	return len(m.activeFuncs())
}

// Scheduled returns how many intervals were ever established.
func (m *ManualScheduler) Scheduled() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scheduled
}

func (m *ManualScheduler) activeFuncs() []func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	var fns []func()
	for _, j := range m.jobs {
		if j.active {
			fns = append(fns, j.fn)
		}
	}
	return fns
}

// TonePlayer counts PlayTone calls.
type TonePlayer struct {
	mu    sync.Mutex
	plays int
}

// PlayTone implements timer.TonePlayer.
func (p *TonePlayer) PlayTone() {
	p.mu.Lock()
	p.plays++
	p.mu.Unlock()
}

// Plays returns how many tones were requested.
func (p *TonePlayer) Plays() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.plays
}
