package main

import "github.com/charmbracelet/lipgloss"

// styles groups the console styles. The plain set renders text unchanged.
type styles struct {
	title  lipgloss.Style
	result lipgloss.Style
	err    lipgloss.Style
	help   lipgloss.Style
}

func newStyles(plain bool) styles {
	if plain {
		return styles{
			title:  lipgloss.NewStyle(),
			result: lipgloss.NewStyle(),
			err:    lipgloss.NewStyle(),
			help:   lipgloss.NewStyle(),
		}
	}

	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1),
		result: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90")),
		err: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")),
	}
}
