package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oxonbus/busboard/internal/api"
	"github.com/oxonbus/busboard/internal/config"
	"github.com/oxonbus/busboard/internal/models"
)

// Model is the root Bubble Tea model for the live board watcher.
type Model struct {
	cfg    *config.Config
	client *api.Client
	width  int
	height int

	spinner spinner.Model
	loading bool

	snapshot   *models.Snapshot
	fetchErr   error
	lastUpdate time.Time
	nextDelay  time.Duration
	night      bool

	clock time.Time
}

// New creates a new TUI model.
func New(cfg *config.Config, client *api.Client) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleLoading

	return Model{
		cfg:     cfg,
		client:  client,
		spinner: sp,
		loading: true,
		clock:   time.Now(),
	}
}

// Init kicks off the first fetch, the wall clock, and the spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		fetchBoard(m.client, m.cfg.StopID),
		clockTick(),
		m.spinner.Tick,
	)
}
