package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

type styles struct {
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	note  lipgloss.Style
	err   lipgloss.Style
	help  lipgloss.Style
	cur   lipgloss.Style
}

func colorStyles() styles {
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1),
		label: lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
		value: lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98")),
		note:  lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")),
		err:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		help:  lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
		cur: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")),
	}
}

// plainStyles renders text unchanged.
func plainStyles() styles {
	s := lipgloss.NewStyle()
	return styles{title: s, label: s, value: s, note: s, err: s, help: s, cur: s}
}

// stdoutStyles picks colors only when stdout is a terminal.
func stdoutStyles() styles {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return colorStyles()
	}
	return plainStyles()
}
