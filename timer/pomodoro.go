package timer

import (
	"slices"
	"sync"

	"fyne.io/fyne/v2"
	log "github.com/sirupsen/logrus"
)

// TonePlayer emits the expiration alert. Implementations must not block.
type TonePlayer interface {
	PlayTone()
}

// TimerUI is the minimal interface the timer logic expects from the UI side.
type TimerUI interface {
	GetCanvasObject() fyne.CanvasObject
	UpdateDisplay()
}

// Pomodoro is the runtime around State: it owns the periodic tick source and
// fires the tone when a run reaches zero.
//
// The interval is torn down on every transition that leaves Running and a
// generation counter drops callbacks that were already in flight when the
// interval was cancelled.
type Pomodoro struct {
	mu         sync.Mutex
	state      State
	scheduler  Scheduler
	player     TonePlayer
	cancel     Cancel
	generation uint64
	seq        uint64
	observers  []func(State)

	// notifyMu orders deliveries; delivered is the last seq handed out.
	notifyMu  sync.Mutex
	delivered uint64

	// ui is managed by the ui package; see SetUI.
	ui TimerUI
}

// NewPomodoro creates an idle timer. A nil scheduler falls back to
// TickerScheduler; a nil player disables the alert.
func NewPomodoro(s Scheduler, p TonePlayer) *Pomodoro {
	if s == nil {
		s = TickerScheduler{}
	}
	return &Pomodoro{
		state:     InitialState(),
		scheduler: s,
		player:    p,
	}
}

// SetUI attaches the display refreshed after every state change.
func (p *Pomodoro) SetUI(ui TimerUI) {
	p.mu.Lock()
	p.ui = ui
	p.mu.Unlock()
}

// OnChange registers fn to be called after every state change.
func (p *Pomodoro) OnChange(fn func(State)) {
	p.mu.Lock()
	p.observers = append(p.observers, fn)
	p.mu.Unlock()
}

// Start begins the countdown. It is a no-op while running or expired.
func (p *Pomodoro) Start() {
	p.mu.Lock()
	next := ApplyEvent(p.state, EventStart)
	if next == p.state {
		p.mu.Unlock()
		return
	}
	p.state = next
	p.stopLocked()
	gen := p.generation
	p.cancel = p.scheduler.Every(TickInterval, func() { p.tick(gen) })
	p.seq++
	seq := p.seq
	p.mu.Unlock()

	log.Debugf("pomodoro started at %s", FormatTime(next.Remaining))
	p.notify(next, seq)
}

// Reset stops the countdown and restores the full duration.
func (p *Pomodoro) Reset() {
	p.mu.Lock()
	p.state = ApplyEvent(p.state, EventReset)
	p.stopLocked()
	s := p.state
	p.seq++
	seq := p.seq
	p.mu.Unlock()

	log.Debug("pomodoro reset")
	p.notify(s, seq)
}

// Close releases the tick source. The timer stays usable afterwards.
func (p *Pomodoro) Close() {
	p.mu.Lock()
	p.stopLocked()
	p.mu.Unlock()
}

// Snapshot returns the current state in a thread-safe manner.
func (p *Pomodoro) Snapshot() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Pomodoro) tick(gen uint64) {
	p.mu.Lock()
	if gen != p.generation || !p.state.Running {
		p.mu.Unlock()
		return
	}
	p.state = ApplyEvent(p.state, EventTick)
	s := p.state
	expired := s.Phase() == PhaseExpired
	if expired {
		p.stopLocked()
	}
	player := p.player
	p.seq++
	seq := p.seq
	p.mu.Unlock()

	p.notify(s, seq)
	if expired {
		log.Info("pomodoro finished")
		if player != nil {
			player.PlayTone()
		}
	}
}

// stopLocked cancels the active interval, if any, and invalidates callbacks
// scheduled by it. Caller must hold mu.
func (p *Pomodoro) stopLocked() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.generation++
}

// notify hands s to observers and the UI. Deliveries are serialized and a
// change older than one already delivered is dropped, so observers always
// end on the latest state.
func (p *Pomodoro) notify(s State, seq uint64) {
	p.notifyMu.Lock()
	defer p.notifyMu.Unlock()
	if seq <= p.delivered {
		return
	}
	p.delivered = seq

	p.mu.Lock()
	observers := slices.Clone(p.observers)
	ui := p.ui
	p.mu.Unlock()

	for _, fn := range observers {
		fn(s)
	}
	if ui != nil {
		ui.UpdateDisplay()
	}
}
