package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oxonbus/busboard/internal/board"
)

// Update handles all messages and key events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case boardResultMsg:
		return m.handleBoardResult(msg)

	case refreshTickMsg:
		return m.handleRefreshTick()

	case clockTickMsg:
		m.clock = time.Time(msg)
		m.night = board.Quiet(m.clock.Hour(), m.cfg.QuietStart, m.cfg.QuietEnd)
		return m, clockTick()

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleBoardResult(msg boardResultMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	m.fetchErr = msg.err
	if msg.err != nil {
		// Keep the previous snapshot on screen and retry at the
		// standard cadence.
		m.nextDelay = m.cfg.DayRefresh
		return m, refreshTick(m.nextDelay)
	}

	now := time.Now()
	snap := board.NewSnapshot(*msg.board, m.cfg.WalkMinutes, now)
	m.snapshot = &snap
	m.lastUpdate = now
	m.nextDelay = board.NextDelay(snap.EmphasizedEta().Minutes, m.cfg.FastWindowMin, m.cfg.DayRefresh, m.cfg.FastRefresh)
	return m, refreshTick(m.nextDelay)
}

func (m Model) handleRefreshTick() (tea.Model, tea.Cmd) {
	if m.night {
		// No polling during quiet hours; check again at the quiet cadence.
		return m, refreshTick(m.cfg.QuietRefresh)
	}
	m.loading = true
	return m, tea.Batch(fetchBoard(m.client, m.cfg.StopID), m.spinner.Tick)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "r":
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(fetchBoard(m.client, m.cfg.StopID), m.spinner.Tick)
	}
	return m, nil
}
