// Package cli implements the budgetwise command line interface.
package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	PrimaryColor = lipgloss.Color("#4ECDC4")
	SuccessColor = lipgloss.Color("#7BD389")
	WarningColor = lipgloss.Color("#FFE66D")
	ErrorColor   = lipgloss.Color("#FF6B6B")
	InfoColor    = lipgloss.Color("#95E1D3")
	SubtleColor  = lipgloss.Color("#666666")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// HeaderStyle is used for table headers.
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	// OverBudgetStyle marks budgets that have been exceeded.
	OverBudgetStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ErrorColor)
)

const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠"
	InfoIcon    = "ℹ"
	WalletIcon  = "💰"
)

func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats a failure as a single line notification.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + oneLine(message))
}

func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

func FormatInfo(message string) string {
	return InfoStyle.Render(InfoIcon + " " + message)
}

func FormatTitle(title string) string {
	return TitleStyle.Render(WalletIcon + " " + title)
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
