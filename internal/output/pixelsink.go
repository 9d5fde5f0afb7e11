package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/oxonbus/busboard/internal/render"
)

// Terminal color indices for the panel palette (256-color).
const (
	pixelWhite = 231
	pixelBlack = 16
	pixelRed   = 196
)

// PixelSink draws frames into a terminal using half-block characters,
// one character cell per two vertical pixels. It emulates the panel
// closely enough to develop layouts away from the hardware.
type PixelSink struct {
	w     io.Writer
	color bool
}

// NewPixelSink creates a terminal frame sink
func NewPixelSink(w io.Writer, mode ColorMode) *PixelSink {
	return &PixelSink{w: w, color: mode.Enabled()}
}

// Init clears the screen and hides the cursor
func (s *PixelSink) Init() error {
	ClearScreen(s.w)
	HideCursor(s.w)
	return nil
}

// Render draws one frame, replacing the previous one
func (s *PixelSink) Render(f render.Frame) error {
	var sb strings.Builder
	sb.WriteString("\033[H")

	for y := 0; y < render.Height; y += 2 {
		if s.color {
			s.colorRow(&sb, f, y)
		} else {
			s.monoRow(&sb, f, y)
		}
		sb.WriteString("\033[0m\n")
	}

	_, err := io.WriteString(s.w, sb.String())
	return err
}

// Sleep restores the cursor; the last frame stays on screen, which
// mirrors how e-paper holds its image without power.
func (s *PixelSink) Sleep() error {
	ShowCursor(s.w)
	return nil
}

// pixelColor maps one landscape pixel to its palette index.
func pixelColor(f render.Frame, x, y int) int {
	switch {
	case f.Red.Ink(x, y):
		return pixelRed
	case f.Black.Ink(x, y):
		return pixelBlack
	default:
		return pixelWhite
	}
}

func (s *PixelSink) colorRow(sb *strings.Builder, f render.Frame, y int) {
	// The upper pixel is the foreground of "▀", the lower the background.
	lastFg, lastBg := -1, -1
	for x := 0; x < render.Width; x++ {
		fg := pixelColor(f, x, y)
		bg := pixelColor(f, x, y+1)
		if fg != lastFg || bg != lastBg {
			fmt.Fprintf(sb, "\033[38;5;%dm\033[48;5;%dm", fg, bg)
			lastFg, lastBg = fg, bg
		}
		sb.WriteRune('▀')
	}
}

func (s *PixelSink) monoRow(sb *strings.Builder, f render.Frame, y int) {
	for x := 0; x < render.Width; x++ {
		top := f.Black.Ink(x, y) || f.Red.Ink(x, y)
		bottom := f.Black.Ink(x, y+1) || f.Red.Ink(x, y+1)
		switch {
		case top && bottom:
			sb.WriteRune('█')
		case top:
			sb.WriteRune('▀')
		case bottom:
			sb.WriteRune('▄')
		default:
			sb.WriteRune(' ')
		}
	}
}
