package tui

import "github.com/charmbracelet/lipgloss"

// Colors matching the output/colors.go scheme
var (
	colorCyan   = lipgloss.Color("6")  // Cyan - routes
	colorYellow = lipgloss.Color("3")  // Yellow - times
	colorRed    = lipgloss.Color("1")  // Red - emphasized departure
	colorWhite  = lipgloss.Color("15") // White - text
	colorGray   = lipgloss.Color("8")  // Gray - muted text
)

// Text styles
var (
	styleHeader  = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	styleRoute   = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	styleDest    = lipgloss.NewStyle().Foreground(colorWhite)
	styleEta     = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	styleMuted   = lipgloss.NewStyle().Foreground(colorGray)
	styleLoading = lipgloss.NewStyle().Foreground(colorYellow)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
)

// The catchable departure gets a red bordered card, everything else a
// muted one.
var (
	styleRowEmphasized = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(colorRed).
				Padding(0, 1)

	styleRowNormal = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)
)

var styleEmphasisText = lipgloss.NewStyle().Foreground(colorRed).Bold(true)

// Night screen
var styleNight = lipgloss.NewStyle().Foreground(colorGray).Padding(1, 2)
