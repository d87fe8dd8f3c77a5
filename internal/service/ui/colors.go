package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sandevgo/csvterm/internal/service/command"
)

var (
	// TitleStyle ANSI 6 (Cyan) reads well on both light and dark terminals
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)

	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// DescStyle ANSI 8 (Bright Black) keeps descriptions and labels quiet
	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	FlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	FieldStyle  = lipgloss.NewStyle().Bold(true)
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	OutputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// RenderOutput colours command output.
func RenderOutput(out string) string {
	if command.IsError(out) {
		return ErrorStyle.Render(out)
	}
	return OutputStyle.Render(out)
}
