package ui

import (
	"image/color"

	"pomodoro/timer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CustomTheme tints the default theme with the progress color and optionally
// swaps in a medium/bold font pair.
type CustomTheme struct {
	fyne.Theme
	medium fyne.Resource
	bold   fyne.Resource
}

// NewCustomTheme creates a new instance of the custom theme. Nil fonts keep
// the default ones.
func NewCustomTheme(mediumFont, boldFont fyne.Resource) fyne.Theme {
	return &CustomTheme{Theme: theme.DefaultTheme(), medium: mediumFont, bold: boldFont}
}

// Color returns the progress color for primary accents.
func (t *CustomTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if name == theme.ColorNamePrimary {
		return timer.ProgressColor
	}
	return t.Theme.Color(name, variant)
}

// Font returns the font for the given style.
func (t *CustomTheme) Font(style fyne.TextStyle) fyne.Resource {
	if style.Bold && t.bold != nil {
		return t.bold
	}
	if t.medium != nil && !style.Monospace {
		return t.medium
	}
	return t.Theme.Font(style)
}
