// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss colors are chosen. All styling
// is semantic (Success, Warning, Error, etc.) rather than visual (RedBold, etc.).
//
// When disabled, all helpers return the input string unchanged with no ANSI codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	enabled bool
	palette Palette

	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	headerStyle  lipgloss.Style
	mutedStyle   lipgloss.Style
)

// Init enables or disables styling with the palette detected from the terminal.
// NO_COLOR and DSP_NO_COLOR disable styling regardless of enable.
//
// This function should be called once from main before any output.
func Init(enable bool) {
	InitWithPalette(enable, DetectPalette())
}

// InitWithPalette is Init with an explicit palette.
func InitWithPalette(enable bool, p Palette) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("DSP_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable
	if enabled {
		palette = p
		initStyles(p)
	}
}

// Colors returns the active palette; empty when styling is disabled.
func Colors() Palette {
	if !enabled {
		return Palette{}
	}
	return palette
}

func initStyles(p Palette) {
	// Force ANSI256 regardless of TTY detection so the palette numbers render as given.
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = makeStyle(p.Success)
	warningStyle = makeStyle(p.Warning)
	errorStyle = makeStyle(p.Error)
	infoStyle = makeStyle(p.Info)
	mutedStyle = makeStyle(p.Muted)
	headerStyle = makeStyle(p.Header)
}

// makeStyle creates a lipgloss style from a color value.
// The value can be "bold" for bold styling, or an ANSI color number (0-255).
func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	return enabled
}

// Success styles text for successful operations.
func Success(text string) string {
	if !enabled {
		return text
	}
	return successStyle.Render(text)
}

// Warning styles text for warning messages.
func Warning(text string) string {
	if !enabled {
		return text
	}
	return warningStyle.Render(text)
}

// Error styles text for error messages.
func Error(text string) string {
	if !enabled {
		return text
	}
	return errorStyle.Render(text)
}

// Info styles text for informational messages.
func Info(text string) string {
	if !enabled {
		return text
	}
	return infoStyle.Render(text)
}

// Header styles text for section headers or titles.
func Header(text string) string {
	if !enabled {
		return text
	}
	return headerStyle.Render(text)
}

// Muted styles text for less important or secondary information.
func Muted(text string) string {
	if !enabled {
		return text
	}
	return mutedStyle.Render(text)
}
