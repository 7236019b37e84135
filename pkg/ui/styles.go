package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used for status lines
type Styles struct {
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Path    lipgloss.Style
	Added   lipgloss.Style
	Removed lipgloss.Style
	Changed lipgloss.Style
}

var (
	colorSuccess = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#81C784"}
	colorWarning = lipgloss.AdaptiveColor{Light: "#B26A00", Dark: "#FFB74D"}
	colorError   = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#E57373"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#616161", Dark: "#9E9E9E"}
	colorPath    = lipgloss.AdaptiveColor{Light: "#1565C0", Dark: "#64B5F6"}
)

// NewStyles builds styles bound to w. Without colour every style renders
// plain text.
func NewStyles(w io.Writer, colored bool) Styles {
	r := lipgloss.NewRenderer(w)
	if !colored {
		r.SetColorProfile(termenv.Ascii)
	}
	return Styles{
		Success: r.NewStyle().Foreground(colorSuccess).Bold(true),
		Warning: r.NewStyle().Foreground(colorWarning).Bold(true),
		Error:   r.NewStyle().Foreground(colorError).Bold(true),
		Muted:   r.NewStyle().Foreground(colorMuted),
		Path:    r.NewStyle().Foreground(colorPath).Underline(true),
		Added:   r.NewStyle().Foreground(colorSuccess),
		Removed: r.NewStyle().Foreground(colorError),
		Changed: r.NewStyle().Foreground(colorWarning),
	}
}
