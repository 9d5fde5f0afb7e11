package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/oxonbus/busboard/internal/models"
)

// View renders the entire TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.night {
		return m.renderNight()
	}

	header := m.renderHeader()
	rows := m.renderRows()
	status := m.renderStatusBar()

	return lipgloss.JoinVertical(lipgloss.Left, header, rows, status)
}

// renderHeader shows the stop name and the wall clock.
func (m Model) renderHeader() string {
	title := m.cfg.StopID
	if m.snapshot != nil && m.snapshot.Board.Description != "" {
		title = m.snapshot.Board.Description
	}

	left := styleHeader.Render(title)
	right := styleMuted.Render(m.clock.Format("15:04:05"))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderRows shows the three departures, the catchable one emphasized.
func (m Model) renderRows() string {
	if m.snapshot == nil {
		if m.fetchErr != nil {
			return styleError.Render("Error: " + m.fetchErr.Error())
		}
		return m.spinner.View() + styleLoading.Render(" Fetching departures...")
	}

	rowWidth := m.width - 4
	if rowWidth < 24 {
		rowWidth = 24
	}

	var rows []string
	for i, call := range m.snapshot.Board.Calls {
		rows = append(rows, m.renderRow(i, call, rowWidth))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderRow(i int, call models.DepartureCall, width int) string {
	eta := m.snapshot.Etas[i]
	emphasized := i == m.snapshot.Emphasized

	if call.IsPlaceholder() {
		return styleRowNormal.Width(width).Render(styleMuted.Render("--"))
	}

	route := call.RouteCode
	if len(route) > 3 {
		route = route[:3]
	}

	etaText := eta.Label
	if eta.Known() {
		etaText = fmt.Sprintf("%s min", eta.Label)
	}

	var line string
	if emphasized {
		line = styleEmphasisText.Render(fmt.Sprintf("%-3s  %-24s  %8s", route, call.DestinationName, etaText))
		return styleRowEmphasized.Width(width).Render(line)
	}

	line = styleRoute.Render(fmt.Sprintf("%-3s", route)) + "  " +
		styleDest.Render(fmt.Sprintf("%-24s", call.DestinationName)) + "  " +
		styleEta.Render(fmt.Sprintf("%8s", etaText))
	return styleRowNormal.Width(width).Render(line)
}

// renderStatusBar shows fetch state and key hints.
func (m Model) renderStatusBar() string {
	var parts []string

	if m.loading {
		parts = append(parts, m.spinner.View()+styleLoading.Render(" updating"))
	} else if !m.lastUpdate.IsZero() {
		parts = append(parts, styleMuted.Render("updated "+m.lastUpdate.Format("15:04:05")))
	}

	if m.fetchErr != nil {
		parts = append(parts, styleError.Render("fetch failed"))
	}

	if m.nextDelay > 0 && !m.loading {
		parts = append(parts, styleMuted.Render(fmt.Sprintf("next in %ds", int(m.nextDelay.Seconds()))))
	}

	parts = append(parts, styleMuted.Render(fmt.Sprintf("walk %d min · quiet %02d-%02d",
		m.cfg.WalkMinutes, m.cfg.QuietStart, m.cfg.QuietEnd)))
	parts = append(parts, styleMuted.Render("r refresh · q quit"))
	return strings.Join(parts, styleMuted.Render("  |  "))
}

// renderNight shows the quiet-hours screen.
func (m Model) renderNight() string {
	text := fmt.Sprintf("Night %s\n\nBuses are sleeping.\nSo are we :)\n\nBack %02d:00",
		m.clock.Format("15:04"), m.cfg.QuietEnd)
	return styleNight.Render(text)
}
