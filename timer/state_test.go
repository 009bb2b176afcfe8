package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialState(t *testing.T) {
	s := InitialState()
	assert.Equal(t, State{Remaining: TotalDuration, Running: false}, s)
	assert.Equal(t, PhaseIdle, s.Phase())
}

func TestApplyEventStartIsIdempotent(t *testing.T) {
	once := ApplyEvent(InitialState(), EventStart)
	twice := ApplyEvent(once, EventStart)

	assert.True(t, once.Running)
	assert.Equal(t, once, twice)
	assert.Equal(t, PhaseRunning, twice.Phase())
}

func TestApplyEventStartInertWhenExpired(t *testing.T) {
	expired := State{Remaining: 0, Running: false}
	assert.Equal(t, expired, ApplyEvent(expired, EventStart))
}

func TestApplyEventResetFromAnyState(t *testing.T) {
	states := []State{
		InitialState(),
		{Remaining: 700, Running: true},
		{Remaining: 1, Running: true},
		{Remaining: 0, Running: false},
		{Remaining: 42, Running: false},
	}
	for _, s := range states {
		assert.Equal(t, InitialState(), ApplyEvent(s, EventReset), "reset from %+v", s)
	}
}

func TestApplyEventTick(t *testing.T) {
	s := ApplyEvent(State{Remaining: 2, Running: true}, EventTick)
	assert.Equal(t, State{Remaining: 1, Running: true}, s)

	s = ApplyEvent(s, EventTick)
	assert.Equal(t, State{Remaining: 0, Running: false}, s)
	assert.Equal(t, PhaseExpired, s.Phase())

	// ticking an expired timer never underflows
	s = ApplyEvent(s, EventTick)
	assert.Equal(t, 0, s.Remaining)
}

func TestApplyEventTickIgnoredWhileIdle(t *testing.T) {
	s := InitialState()
	assert.Equal(t, s, ApplyEvent(s, EventTick))
}

func TestApplyEventDoesNotMutateInput(t *testing.T) {
	in := State{Remaining: 10, Running: true}
	_ = ApplyEvent(in, EventTick)
	assert.Equal(t, 10, in.Remaining)
}

func TestRemainingStaysInDomain(t *testing.T) {
	s := ApplyEvent(InitialState(), EventStart)
	for i := 0; i < TotalDuration+10; i++ {
		s = ApplyEvent(s, EventTick)
		assert.GreaterOrEqual(t, s.Remaining, 0)
		assert.LessOrEqual(t, s.Remaining, TotalDuration)
		if s.Running {
			assert.Positive(t, s.Remaining)
		}
	}
}
