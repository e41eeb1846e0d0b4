package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// NewCheckTable creates a table for listing check statuses, sized to the
// current terminal.
func NewCheckTable() *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(TableBorderStyle).
		BorderColumn(true).
		Width(min(GetTerminalWidth(), 100)).
		StyleFunc(checkTableStyleFunc)
}

func checkTableStyleFunc(row, col int) lipgloss.Style {
	if row == table.HeaderRow {
		return TableHeaderStyle
	}
	return TableCellStyle
}
