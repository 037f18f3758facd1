// Package ui holds the shared terminal styling for pulsegif commands.
package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colors for status indication, using ANSI codes so output
// degrades cleanly on limited terminals.
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// Shared styles built on the semantic colors.
var (
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorError)
	MutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
)
