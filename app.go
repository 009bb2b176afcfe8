// Package main contains the application wiring and the AppManager which
// coordinates the pomodoro, audio, tray and the UI. This file centralizes the
// shared application state and the command loop used to serialize timer
// state mutations.
//
// Maintenance notes / tips:
//   - Concurrency model: UI commands go through a single command-loop
//     goroutine (see `commandLoop`). Ticks arrive on the scheduler goroutine
//     and call into the Pomodoro directly; the Pomodoro mutex serializes both.
//   - `cmdCh` is a buffered channel. EnqueueCommand drops a command when the
//     channel stays full past the timeout so the UI never blocks.
package main

import (
	"context"
	"time"

	"pomodoro/control"
	"pomodoro/i18n"
	"pomodoro/timer"
	"pomodoro/tray"
	"pomodoro/ui"

	"fyne.io/fyne/v2"
	log "github.com/sirupsen/logrus"
)

// Notifier delivers desktop notifications; fyne.App satisfies it.
type Notifier interface {
	SendNotification(*fyne.Notification)
}

// AppManager is the main application struct, holding all state.
type AppManager struct {
	mainWindow fyne.Window
	pomodoro   *timer.Pomodoro
	widget     *ui.PomodoroWidget
	tray       *tray.Manager
	notifier   Notifier

	cmdCh     chan control.Command
	cmdCtx    context.Context
	cmdCancel context.CancelFunc
}

// NewAppManager creates a new application manager and starts its command
// loop.
func NewAppManager(p *timer.Pomodoro) *AppManager {
	a := &AppManager{pomodoro: p}

	a.cmdCh = make(chan control.Command, 16)
	a.cmdCtx, a.cmdCancel = context.WithCancel(context.Background())
	go a.commandLoop()

	p.OnChange(a.onStateChange)
	a.widget = ui.NewPomodoroWidget(a, p)
	return a
}

// EnqueueCommand posts a command to the internal command loop.
func (a *AppManager) EnqueueCommand(cmd control.Command) {
	select {
	case a.cmdCh <- cmd:
	case <-time.After(150 * time.Millisecond):
		log.Printf("EnqueueCommand timeout: dropping %s command", cmd.Type)
	}
}

func (a *AppManager) commandLoop() {
	for {
		select {
		case <-a.cmdCtx.Done():
			return
		case cmd := <-a.cmdCh:
			switch cmd.Type {
			case control.CmdStart:
				a.pomodoro.Start()
			case control.CmdReset:
				a.pomodoro.Reset()
			default:
				log.Warnf("Unknown command type %d", cmd.Type)
			}
			// send reply if requested
			if cmd.Reply != nil {
				select {
				case cmd.Reply <- nil:
				default:
				}
			}
		}
	}
}

// SetTray attaches the tray manager mirroring the countdown.
func (a *AppManager) SetTray(m *tray.Manager) {
	a.tray = m
}

// SetNotifier attaches the desktop notification sink used at expiration.
func (a *AppManager) SetNotifier(n Notifier) {
	a.notifier = n
}

func (a *AppManager) onStateChange(s timer.State) {
	if a.tray != nil {
		fyne.Do(func() { a.tray.SetState(s) })
	}
	if s.Phase() == timer.PhaseExpired && a.notifier != nil {
		a.notifier.SendNotification(fyne.NewNotification(i18n.T("Pomodoro Timer"), i18n.T("Time is up!")))
	}
}

// HandleKeyRune handles key presses for the application.
func (a *AppManager) HandleKeyRune(r rune) {
	switch r {
	case ' ':
		a.widget.StartButton().Tapped(&fyne.PointEvent{})
	case 'r', 'R':
		a.widget.ResetButton().Tapped(&fyne.PointEvent{})
	}
}

// Shutdown stops the command loop and releases the tick source.
func (a *AppManager) Shutdown() {
	if a.cmdCancel != nil {
		a.cmdCancel()
	}
	a.pomodoro.Close()
}
