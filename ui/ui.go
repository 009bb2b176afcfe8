package ui

import (
	"image/color"
	"time"

	"pomodoro/control"
	"pomodoro/i18n"
	"pomodoro/timer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// replyTimeout bounds how long a control waits for the command loop.
const replyTimeout = 200 * time.Millisecond

type App interface {
	EnqueueCommand(cmd control.Command)
	HandleKeyRune(rune)
}

type PomodoroWidget struct {
	*timer.Pomodoro

	titleText   *canvas.Text
	timeText    *canvas.Text
	ring        *ProgressRing
	startButton *widget.Button
	resetButton *widget.Button
	content     fyne.CanvasObject
}

func NewPomodoroWidget(a App, p *timer.Pomodoro) *PomodoroWidget {
	w := &PomodoroWidget{Pomodoro: p}

	w.titleText = canvas.NewText(i18n.T("Pomodoro Timer"), theme.Color(theme.ColorNameForeground))
	w.titleText.TextStyle.Bold = true
	w.titleText.TextSize = timer.FontSizeTitle

	w.timeText = canvas.NewText(timer.FormatTime(timer.TotalDuration), theme.Color(theme.ColorNameForeground))
	w.timeText.TextStyle.Monospace = true
	w.timeText.TextSize = timer.FontSizeTime

	w.ring = NewProgressRing()

	w.startButton = widget.NewButton(i18n.T("Start"), func() {
		sendAndWait(a, control.CmdStart)
		w.UpdateDisplay()
	})
	w.resetButton = widget.NewButton(i18n.T("Reset"), func() {
		sendAndWait(a, control.CmdReset)
		w.UpdateDisplay()
	})

	buttonsSpacer := canvas.NewRectangle(color.Transparent)
	buttonsSpacer.SetMinSize(fyne.NewSize(timer.ControlButtonsGap, 0))

	controls := container.NewHBox(
		layout.NewSpacer(),
		w.startButton,
		buttonsSpacer,
		w.resetButton,
		layout.NewSpacer(),
	)

	dial := container.NewStack(w.ring, container.NewCenter(w.timeText))

	w.content = container.NewVBox(
		container.NewCenter(w.titleText),
		container.NewCenter(dial),
		controls,
	)

	p.SetUI(w)
	w.UpdateDisplay()
	return w
}

func (w *PomodoroWidget) GetCanvasObject() fyne.CanvasObject {
	return w.content
}

// StartButton returns the Start control.
func (w *PomodoroWidget) StartButton() *widget.Button {
	return w.startButton
}

// ResetButton returns the Reset control.
func (w *PomodoroWidget) ResetButton() *widget.Button {
	return w.resetButton
}

func (w *PomodoroWidget) UpdateDisplay() {
	s := w.Pomodoro.Snapshot()
	fyne.Do(func() {
		fg := theme.Color(theme.ColorNameForeground)
		w.titleText.Color = fg
		w.titleText.Refresh()
		w.timeText.Color = fg
		w.timeText.Text = timer.FormatTime(s.Remaining)
		w.timeText.Refresh()
		w.ring.SetPercentage(timer.Percentage(s.Remaining))

		setEnabled(w.startButton, s.Phase() == timer.PhaseIdle)
		setEnabled(w.resetButton, s.Phase() != timer.PhaseIdle)
	})
}

func CreateMainWindow(a App, fyneApp fyne.App, pw *PomodoroWidget) fyne.Window {
	title := fyneApp.Metadata().Name
	if title == "" {
		title = i18n.T("Pomodoro Timer")
	}
	w := fyneApp.NewWindow(title)

	w.Canvas().SetOnTypedRune(a.HandleKeyRune)

	w.SetContent(container.NewPadded(pw.GetCanvasObject()))
	w.Resize(fyne.NewSize(timer.WindowWidth, timer.WindowHeight))
	w.SetFixedSize(true)
	return w
}

func sendAndWait(a App, t control.CommandType) {
	reply := make(chan error, 1)
	a.EnqueueCommand(control.Command{Type: t, Reply: reply})
	select {
	case <-reply:
	case <-time.After(replyTimeout):
	}
}

func setEnabled(b *widget.Button, enabled bool) {
	if enabled {
		b.Enable()
	} else {
		b.Disable()
	}
}
