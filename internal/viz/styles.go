// Package viz renders sweeps and lookup tables for the terminal.
package viz

import "github.com/charmbracelet/lipgloss"

var (
	title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	label = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	value = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	unit  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	warn  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)
