package main

import (
	"os"
	"strings"

	"pomodoro/audio"
	"pomodoro/timer"
	"pomodoro/tray"
	"pomodoro/ui"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	log "github.com/sirupsen/logrus"
)

func main() {
	configureLogging(os.Getenv("POMODORO_LOG_LEVEL"))

	fyneApp := app.NewWithID("io.pomodoro.timer")
	fyneApp.Settings().SetTheme(ui.NewCustomTheme(nil, nil))

	player := newTonePlayer(os.Getenv("POMODORO_MUTE"))
	if sp, ok := player.(*audio.SpeakerPlayer); ok {
		// failure is logged and leaves the player silent
		_ = sp.Init()
	}
	p := timer.NewPomodoro(timer.TickerScheduler{}, player)
	a := NewAppManager(p)
	a.SetNotifier(fyneApp)

	w := ui.CreateMainWindow(a, fyneApp, a.widget)
	a.mainWindow = w

	if desk, ok := fyneApp.(desktop.App); ok {
		a.SetTray(tray.New(desk, tray.Callbacks{
			OnStart: func() { a.widget.StartButton().OnTapped() },
			OnReset: func() { a.widget.ResetButton().OnTapped() },
			OnQuit:  fyneApp.Quit,
		}))
	} else {
		log.Printf("System tray unsupported on this platform")
	}

	w.SetOnClosed(a.Shutdown)
	w.ShowAndRun()
}

func configureLogging(level string) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if level == "" {
		log.SetLevel(log.InfoLevel)
		return
	}
	parsed, err := log.ParseLevel(level)
	if err != nil {
		log.Printf("Invalid POMODORO_LOG_LEVEL %q, using info", level)
		parsed = log.InfoLevel
	}
	log.SetLevel(parsed)
}

func newTonePlayer(mute string) timer.TonePlayer {
	switch strings.ToLower(strings.TrimSpace(mute)) {
	case "1", "true", "yes":
		log.Printf("Audio muted by POMODORO_MUTE")
		return audio.NopPlayer{}
	}
	return audio.NewSpeakerPlayer()
}
