package output

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorMode represents the color output mode
type ColorMode int

const (
	// ColorAuto enables colors if output is a TTY
	ColorAuto ColorMode = iota
	// ColorAlways forces colors on
	ColorAlways
	// ColorNever disables colors
	ColorNever
)

// Colors holds the color functions for different output types
type Colors struct {
	Header   func(format string, a ...interface{}) string
	Route    func(format string, a ...interface{}) string
	Dest     func(format string, a ...interface{}) string
	TimeText func(format string, a ...interface{}) string
	Emphasis func(format string, a ...interface{}) string
	Muted    func(format string, a ...interface{}) string
}

// Enabled reports whether the mode resolves to colored output
func (m ColorMode) Enabled() bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
}

// NewColors creates a new Colors instance based on the color mode
func NewColors(mode ColorMode) *Colors {
	useColors := mode.Enabled()
	if useColors {
		color.NoColor = false
	}

	if !useColors {
		// Return no-op color functions
		noColor := func(format string, a ...interface{}) string {
			if len(a) == 0 {
				return format
			}
			return color.New().Sprintf(format, a...)
		}
		return &Colors{
			Header:   noColor,
			Route:    noColor,
			Dest:     noColor,
			TimeText: noColor,
			Emphasis: noColor,
			Muted:    noColor,
		}
	}

	return &Colors{
		Header:   color.New(color.FgWhite, color.Bold).SprintfFunc(),
		Route:    color.New(color.FgCyan, color.Bold).SprintfFunc(),
		Dest:     color.New(color.FgWhite).SprintfFunc(),
		TimeText: color.New(color.FgYellow).SprintfFunc(),
		Emphasis: color.New(color.FgRed, color.Bold).SprintfFunc(),
		Muted:    color.New(color.FgHiBlack).SprintfFunc(),
	}
}

// ParseColorMode parses a color mode string
func ParseColorMode(s string) ColorMode {
	switch s {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	default:
		return ColorAuto
	}
}
