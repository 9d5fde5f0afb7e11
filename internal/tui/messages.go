package tui

import (
	"time"

	"github.com/oxonbus/busboard/internal/models"
)

// boardResultMsg carries one fetched departure board back to the model.
type boardResultMsg struct {
	board *models.StopBoard
	err   error
}

// refreshTickMsg triggers the next board fetch.
type refreshTickMsg time.Time

// clockTickMsg is sent every second to keep the header clock moving.
type clockTickMsg time.Time
