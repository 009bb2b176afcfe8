// Package tray mirrors the countdown in the system tray menu.
package tray

import (
	"fmt"
	"sync"

	"pomodoro/i18n"
	"pomodoro/timer"

	"fyne.io/fyne/v2"
)

// MenuSetter is the part of desktop.App the tray needs.
type MenuSetter interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnStart func()
	OnReset func()
	OnQuit  func()
}

// Manager handles system tray state.
type Manager struct {
	mu         sync.Mutex
	app        MenuSetter
	statusItem *fyne.MenuItem
	startItem  *fyne.MenuItem
	resetItem  *fyne.MenuItem
	quitItem   *fyne.MenuItem
	callbacks  Callbacks
}

// New creates a tray manager with the provided callbacks.
func New(app MenuSetter, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true

	manager.startItem = fyne.NewMenuItem(i18n.T("Start"), func() {
		if manager.callbacks.OnStart != nil {
			manager.callbacks.OnStart()
		}
	})
	manager.resetItem = fyne.NewMenuItem(i18n.T("Reset"), func() {
		if manager.callbacks.OnReset != nil {
			manager.callbacks.OnReset()
		}
	})
	manager.quitItem = fyne.NewMenuItem(i18n.T("Quit"), func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})

	manager.SetState(timer.InitialState())
	return manager
}

// SetState updates the status label and the enabled items.
func (manager *Manager) SetState(s timer.State) {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	phase := s.Phase()
	if phase == timer.PhaseExpired {
		manager.statusItem.Label = i18n.T("Time is up!")
	} else {
		manager.statusItem.Label = fmt.Sprintf(i18n.T("Remaining: %s"), timer.FormatTime(s.Remaining))
	}
	manager.startItem.Disabled = phase != timer.PhaseIdle
	manager.resetItem.Disabled = phase == timer.PhaseIdle
	manager.refreshMenu()
}

// Status returns the current status label.
func (manager *Manager) Status() string {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	return manager.statusItem.Label
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(fyne.NewMenu(i18n.T("Pomodoro Timer"),
			manager.statusItem,
			fyne.NewMenuItemSeparator(),
			manager.startItem,
			manager.resetItem,
			manager.quitItem,
		))
	}
}
