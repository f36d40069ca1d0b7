package style

import "github.com/charmbracelet/lipgloss"

// Styler implements domain.Styler over a palette fixed at construction.
// Later Init calls do not affect an existing Styler.
type Styler struct {
	enabled bool
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	info    lipgloss.Style
	muted   lipgloss.Style
	header  lipgloss.Style
}

// NewStyler snapshots the state installed by Init.
func NewStyler() *Styler {
	return NewStylerWithPalette(enabled, palette)
}

// NewStylerWithPalette builds a Styler for p without touching package state.
func NewStylerWithPalette(enable bool, p Palette) *Styler {
	return &Styler{
		enabled: enable,
		success: makeStyle(p.Success),
		warning: makeStyle(p.Warning),
		failure: makeStyle(p.Error),
		info:    makeStyle(p.Info),
		muted:   makeStyle(p.Muted),
		header:  makeStyle(p.Header),
	}
}

func (s *Styler) render(st lipgloss.Style, text string) string {
	if s == nil || !s.enabled {
		return text
	}
	return st.Render(text)
}

func (s *Styler) Enabled() bool              { return s != nil && s.enabled }
func (s *Styler) Success(text string) string { return s.render(s.success, text) }
func (s *Styler) Warning(text string) string { return s.render(s.warning, text) }
func (s *Styler) Error(text string) string   { return s.render(s.failure, text) }
func (s *Styler) Info(text string) string    { return s.render(s.info, text) }
func (s *Styler) Muted(text string) string   { return s.render(s.muted, text) }
func (s *Styler) Header(text string) string  { return s.render(s.header, text) }

// NopStyler never styles. Used in tests and when output is not a terminal.
type NopStyler struct{}

func (NopStyler) Enabled() bool              { return false }
func (NopStyler) Success(text string) string { return text }
func (NopStyler) Warning(text string) string { return text }
func (NopStyler) Error(text string) string   { return text }
func (NopStyler) Info(text string) string    { return text }
func (NopStyler) Muted(text string) string   { return text }
func (NopStyler) Header(text string) string  { return text }
