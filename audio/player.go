// Package audio plays the expiration alert through the default output device.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	log "github.com/sirupsen/logrus"
)

const (
	SampleRate    beep.SampleRate = 44100
	ToneFrequency                 = 440.0
	ToneDuration                  = time.Second

	// ToneVolume is the attenuation applied to the raw sine, base 2.
	ToneVolume = -1.0
)

// NopPlayer discards every alert.
type NopPlayer struct{}

// PlayTone does nothing.
func (NopPlayer) PlayTone() {}

// SpeakerPlayer plays a short sine tone with beep. If the speaker cannot be
// acquired the player turns into a no-op; the countdown never depends on it.
type SpeakerPlayer struct {
	initSpeaker func(sr beep.SampleRate, bufferSize int) error
	initOnce    sync.Once
	initErr     error

	mu      sync.Mutex
	current *beep.Ctrl
}

// NewSpeakerPlayer returns a player backed by the default output device.
// Call Init at startup; PlayTone falls back to initializing on first use.
func NewSpeakerPlayer() *SpeakerPlayer {
	return &SpeakerPlayer{initSpeaker: speaker.Init}
}

// Init acquires the speaker once. Later calls return the first result.
func (p *SpeakerPlayer) Init() error {
	p.initOnce.Do(func() {
		if err := p.initSpeaker(SampleRate, SampleRate.N(time.Second/10)); err != nil {
			p.initErr = fmt.Errorf("init speaker: %w", err)
			log.Warnf("Audio disabled: %v", p.initErr)
		}
	})
	return p.initErr
}

// PlayTone queues one tone without blocking the caller.
func (p *SpeakerPlayer) PlayTone() {
	go p.play()
}

// play stops and releases the previous tone, if still playing, before
// queuing a new one.
func (p *SpeakerPlayer) play() {
	if err := p.Init(); err != nil {
		return
	}

	tone, err := NewTone(SampleRate, ToneFrequency, ToneDuration)
	if err != nil {
		log.Warnf("Failed to build tone: %v", err)
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current != nil {
		speaker.Lock()
		p.current.Paused = true
		p.current.Streamer = nil
		speaker.Unlock()
		speaker.Clear()
	}
	p.current = &beep.Ctrl{Streamer: tone}
	speaker.Play(p.current)
}

// NewTone builds a sine streamer of the given frequency that ends after d.
func NewTone(sr beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, fmt.Errorf("sine tone %.0fHz: %w", freq, err)
	}
	return &effects.Volume{
		Streamer: beep.Take(sr.N(d), sine),
		Base:     2,
		Volume:   ToneVolume,
		Silent:   false,
	}, nil
}
