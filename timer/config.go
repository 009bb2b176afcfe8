package timer

import (
	"image/color"
	"time"
)

// TotalDuration is the fixed countdown length in seconds (25 minutes).
const TotalDuration = 25 * 60

// TickInterval is the period between two ticks while running.
const TickInterval = time.Second

// Circumference of the progress ring (2 * Pi * Radius), used to map a
// percentage onto the arc sweep.
const Circumference = 565.48

// UI constants
const (
	FontSizeTitle float32 = 22.0
	FontSizeTime  float32 = 36.0

	// Dimensions
	RingSize          = 200
	RingRadius        = 90
	RingStroke        = 10
	WindowWidth       = 260
	WindowHeight      = 340
	ControlButtonsGap = 5
)

var (
	// TrackColor is the background track of the progress ring.
	TrackColor = color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	// ProgressColor is the elapsed part of the ring.
	ProgressColor = color.NRGBA{R: 0xe9, G: 0x1e, B: 0x63, A: 0xff}
)
