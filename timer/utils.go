package timer

import (
	"fmt"
)

// FormatTime converts a number of seconds into a mm:ss string format.
func FormatTime(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%02d:%02d", sec/60, sec%60)
}

// Percentage is the elapsed share of TotalDuration, in [0, 100].
func Percentage(remaining int) float64 {
	if remaining < 0 {
		remaining = 0
	}
	if remaining > TotalDuration {
		remaining = TotalDuration
	}
	return float64(TotalDuration-remaining) / float64(TotalDuration) * 100
}

// ArcSweep maps a percentage onto the ring circumference.
func ArcSweep(percentage float64) float64 {
	return percentage / 100 * Circumference
}

// DashOffset is the undrawn part of the ring, the complement of ArcSweep.
func DashOffset(percentage float64) float64 {
	return Circumference - ArcSweep(percentage)
}

// SweepAngle is the progress arc expressed in degrees.
func SweepAngle(percentage float64) float64 {
	return ArcSweep(percentage) / Circumference * 360
}
