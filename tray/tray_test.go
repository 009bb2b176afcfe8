package tray

import (
	"testing"

	"pomodoro/i18n"
	"pomodoro/timer"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingApp struct {
	menus []*fyne.Menu
}

func (r *recordingApp) SetSystemTrayMenu(menu *fyne.Menu) {
	r.menus = append(r.menus, menu)
}

func (r *recordingApp) last() *fyne.Menu {
	return r.menus[len(r.menus)-1]
}

func TestManagerReflectsState(t *testing.T) {
	i18n.SetLang("en")
	app := &recordingApp{}
	m := New(app, Callbacks{})

	require.Len(t, app.menus, 1)
	assert.Equal(t, "Remaining: 25:00", m.Status())
	assert.False(t, m.startItem.Disabled)
	assert.True(t, m.resetItem.Disabled)

	m.SetState(timer.State{Remaining: 65, Running: true})
	assert.Equal(t, "Remaining: 01:05", m.Status())
	assert.True(t, m.startItem.Disabled)
	assert.False(t, m.resetItem.Disabled)

	m.SetState(timer.State{Remaining: 0})
	assert.Equal(t, "Time is up!", m.Status())
	assert.True(t, m.startItem.Disabled)
	assert.False(t, m.resetItem.Disabled)
	assert.Len(t, app.menus, 3)
}

func TestManagerCallbacks(t *testing.T) {
	var started, reset, quit bool
	app := &recordingApp{}
	New(app, Callbacks{
		OnStart: func() { started = true },
		OnReset: func() { reset = true },
		OnQuit:  func() { quit = true },
	})

	items := app.last().Items
	require.Len(t, items, 5)
	items[2].Action()
	items[3].Action()
	items[4].Action()

	assert.True(t, started)
	assert.True(t, reset)
	assert.True(t, quit)
}

func TestManagerWithoutCallbacks(t *testing.T) {
	app := &recordingApp{}
	New(app, Callbacks{})
	for _, item := range app.last().Items {
		if item.Action != nil {
			assert.NotPanics(t, item.Action)
		}
	}
}
