// Package timer contains the domain logic for the pomodoro countdown: the
// State value, the pure ApplyEvent reducer and the Pomodoro runtime that
// drives it from a periodic Scheduler.
//
// Maintenance notes:
//   - State is a plain value. ApplyEvent never mutates its input and has no
//     side effects; scheduling and the alert tone live in Pomodoro.
//   - Running implies Remaining > 0. A tick that reaches zero also clears
//     Running, so Expired is simply Remaining == 0.
package timer

// Phase is the derived state machine position of a State.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseExpired
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseExpired:
		return "expired"
	}
	return "unknown"
}

// Event enumerates the commands that can change a State.
type Event int

const (
	EventStart Event = iota
	EventReset
	EventTick
)

func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventReset:
		return "reset"
	case EventTick:
		return "tick"
	}
	return "unknown"
}

// State holds the countdown position.
type State struct {
	Remaining int
	Running   bool
}

// InitialState is the state at mount and after every reset.
func InitialState() State {
	return State{Remaining: TotalDuration, Running: false}
}

// Phase reports where s sits in the Idle/Running/Expired machine.
func (s State) Phase() Phase {
	switch {
	case s.Remaining <= 0:
		return PhaseExpired
	case s.Running:
		return PhaseRunning
	default:
		return PhaseIdle
	}
}

// ApplyEvent returns the state that results from applying e to s.
func ApplyEvent(s State, e Event) State {
	switch e {
	case EventStart:
		if s.Running || s.Remaining <= 0 {
			return s
		}
		s.Running = true
	case EventReset:
		return InitialState()
	case EventTick:
		if !s.Running {
			return s
		}
		s.Remaining--
		if s.Remaining <= 0 {
			s.Remaining = 0
			s.Running = false
		}
	}
	return s
}
