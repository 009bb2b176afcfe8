package ui

import (
	"image/color"
	"math"
	"sync"

	"pomodoro/timer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// ProgressRing draws the background track and the progress arc as two
// concentric rings. The arc starts at twelve o'clock and grows clockwise.
type ProgressRing struct {
	widget.BaseWidget

	mu     sync.RWMutex
	sweep  float64 // degrees
	raster *canvas.Raster
}

func NewProgressRing() *ProgressRing {
	r := &ProgressRing{}
	r.raster = canvas.NewRasterWithPixels(r.pixelAt)
	r.raster.SetMinSize(fyne.NewSize(timer.RingSize, timer.RingSize))
	r.ExtendBaseWidget(r)
	return r
}

// SetPercentage updates the elapsed share shown by the arc.
func (r *ProgressRing) SetPercentage(p float64) {
	r.mu.Lock()
	r.sweep = timer.SweepAngle(p)
	r.mu.Unlock()
	r.Refresh()
}

// Sweep returns the current arc angle in degrees.
func (r *ProgressRing) Sweep() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sweep
}

func (r *ProgressRing) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(r.raster)
}

func (r *ProgressRing) pixelAt(x, y, w, h int) color.Color {
	size := w
	if h < size {
		size = h
	}
	scale := float64(size) / timer.RingSize
	radius := timer.RingRadius * scale
	half := timer.RingStroke / 2 * scale

	dx := float64(x) + 0.5 - float64(w)/2
	dy := float64(y) + 0.5 - float64(h)/2
	if math.Abs(math.Hypot(dx, dy)-radius) > half {
		return color.Transparent
	}

	angle := math.Atan2(dx, -dy) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}
	if angle < r.Sweep() {
		return timer.ProgressColor
	}
	return timer.TrackColor
}
