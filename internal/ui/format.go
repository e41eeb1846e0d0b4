package ui

import "github.com/charmbracelet/lipgloss"

// Truncate truncates text to maxLen with an ellipsis if needed.
// Uses lipgloss widths so ANSI escapes don't count against the limit.
func Truncate(text string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= maxLen {
		return text
	}

	if maxLen <= 3 {
		return lipgloss.NewStyle().MaxWidth(maxLen).Render(text)
	}

	return lipgloss.NewStyle().MaxWidth(maxLen-3).Render(text) + "..."
}
