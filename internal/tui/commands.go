package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/oxonbus/busboard/internal/api"
)

const apiTimeout = 10 * time.Second

// fetchBoard returns a tea.Cmd that fetches the departure board.
func fetchBoard(client *api.Client, stopID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		board, err := client.GetBoard(ctx, stopID)
		return boardResultMsg{board: board, err: err}
	}
}

// refreshTick returns a tea.Cmd that schedules the next fetch after d.
func refreshTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

// clockTick returns a tea.Cmd that ticks once a second.
func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}
