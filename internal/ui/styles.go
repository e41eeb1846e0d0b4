package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ColorPrimary = lipgloss.Color("#7C3AED") // Purple

	// Status colors
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorInfo    = lipgloss.Color("#3B82F6") // Blue

	// Text colors
	ColorText      = lipgloss.Color("#F3F4F6") // Light gray
	ColorTextMuted = lipgloss.Color("#9CA3AF") // Gray

	// Border colors
	ColorBorder = lipgloss.Color("#374151") // Medium gray
)

// Message styles
var (
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	InfoStyle    = lipgloss.NewStyle().Foreground(ColorInfo)

	HeaderStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	DimStyle    = lipgloss.NewStyle().Foreground(ColorTextMuted)
	BoldStyle   = lipgloss.NewStyle().Bold(true)
)

// Check and merge-state styles
var (
	StateSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	StatePendingStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	StateFailureStyle = lipgloss.NewStyle().Foreground(ColorError)
	StateNeutralStyle = lipgloss.NewStyle().Foreground(ColorTextMuted)
)

// Table styles
var (
	TableBorderStyle = lipgloss.NewStyle().Foreground(ColorBorder)
	TableHeaderStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Padding(0, 1)
	TableCellStyle   = lipgloss.NewStyle().Foreground(ColorText).Padding(0, 1)
)
