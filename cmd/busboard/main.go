package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/oxonbus/busboard/internal/api"
	"github.com/oxonbus/busboard/internal/board"
	"github.com/oxonbus/busboard/internal/config"
	"github.com/oxonbus/busboard/internal/epaper"
	"github.com/oxonbus/busboard/internal/output"
	"github.com/oxonbus/busboard/internal/tui"
)

var version = "1.0.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "busboard",
	Short: "Bus departure board for the OxonTime real-time feed",
	Long: `busboard polls the OxonTime real-time feed for one stop and shows
the next three departures, with the first catchable one emphasized.

Features:
  - Poll loop driving a Waveshare 2.13" e-paper panel or a terminal emulator
  - Big seven-segment minute countdowns in a three-column grid
  - Walk-time filter: the highlighted bus is the one you can still reach
  - Adaptive refresh: faster polling when a catchable bus is close
  - Quiet hours overnight with a sleeping screen
  - One-shot table and JSON output for scripting

Configuration comes from environment variables (OXON_STOP, WALK_MIN,
MODE, DAY_REFRESH, FAST_REFRESH, FAST_WINDOW_MIN, QUIET_START,
QUIET_END, QUIET_REFRESH, BOARD_EMPHASIS, OXON_URL).

Quick Start:
  1. Launch TUI:                busboard (or busboard tui)
  2. One-shot board:            busboard board
  3. Terminal emulator loop:    busboard run --sink terminal
  4. Drive the e-paper panel:   busboard run`,
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no subcommand is provided, launch TUI
		if len(args) == 0 {
			return runTUI(cmd, args)
		}
		return cmd.Help()
	},
}

// Global flags
var (
	flagJSON    bool
	flagRawJSON bool
	flagColor   string
	flagNoCache bool
)

// Run/board flags
var (
	flagSink  string
	flagWatch bool
)

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(tuiCmd)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto", "Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Disable response caching")

	runCmd.Flags().StringVar(&flagSink, "sink", "epaper", "Frame sink: epaper or terminal")

	boardCmd.Flags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	boardCmd.Flags().BoolVar(&flagRawJSON, "raw-json", false, "Output raw feed response")
	boardCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "Watch mode: refresh continuously")
}

// createClient creates a feed client with common options
func createClient(cfg *config.Config) (*api.Client, error) {
	opts := []api.ClientOption{api.WithBaseURL(cfg.FeedBase)}

	// Enable caching unless disabled
	if !flagNoCache {
		opts = append(opts, api.WithDefaultCache())
	}

	return api.NewClient(opts...)
}

// getColorMode returns the color mode based on flag
func getColorMode() output.ColorMode {
	return output.ParseColorMode(flagColor)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the departure board poll loop",
	Long: `Run the continuous poll loop: fetch the board, pick the catchable
departure, render a frame, sleep until the next refresh.

Sinks:
  epaper    Waveshare 2.13" V4 HAT over SPI (default)
  terminal  ANSI half-block emulator for development

Examples:
  busboard run                    # drive the panel
  busboard run --sink terminal    # emulate in the terminal
  WALK_MIN=8 busboard run         # a longer walk to the stop`,
	RunE: runRun,
}

var boardCmd = &cobra.Command{
	Use:   "board [stop]",
	Short: "Show the departure board once",
	Long: `Fetch the departure board once and print it as a table.

The stop defaults to OXON_STOP and can be overridden by the argument.

Examples:
  busboard board
  busboard board 340000022GEO
  busboard board --json
  busboard board --raw-json
  busboard board --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBoard,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive full-screen TUI",
	Long: `Launch an interactive full-screen terminal UI showing the live
departure board with the catchable bus highlighted.

Keyboard:
  r            Refresh now
  q / Esc      Quit`,
	RunE: runTUI,
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client, err := createClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to create feed client: %w", err)
	}

	var sink board.Sink
	switch flagSink {
	case "epaper":
		display, err := epaper.Open()
		if err != nil {
			return fmt.Errorf("failed to open panel: %w", err)
		}
		defer func() { _ = display.Close() }()
		sink = display
	case "terminal":
		sink = output.NewPixelSink(os.Stdout, getColorMode())
	default:
		return fmt.Errorf("unknown sink %q (want epaper or terminal)", flagSink)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return board.NewLoop(cfg, client, sink).Run(ctx)
}

func runBoard(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.StopID = args[0]
	}

	client, err := createClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to create feed client: %w", err)
	}

	ctx := context.Background()

	// Watch mode
	if flagWatch {
		return runWatch(cfg.DayRefresh, func() error {
			return fetchAndRender(ctx, cfg, client)
		})
	}

	// Raw JSON output
	if flagRawJSON {
		raw, err := client.GetBoardRaw(ctx, cfg.StopID)
		if err != nil {
			return err
		}
		return printPrettyJSON(raw)
	}

	stopBoard, err := client.GetBoard(ctx, cfg.StopID)
	if err != nil {
		return err
	}
	snap := board.NewSnapshot(*stopBoard, cfg.WalkMinutes, time.Now())

	// JSON output
	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}

	// Text output with colors
	output.RenderBoard(os.Stdout, snap, output.TableOptions{
		Colors: output.NewColors(getColorMode()),
	})
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client, err := createClient(cfg)
	if err != nil {
		return fmt.Errorf("failed to create feed client: %w", err)
	}

	model := tui.New(cfg, client)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func fetchAndRender(ctx context.Context, cfg *config.Config, client *api.Client) error {
	stopBoard, err := client.GetBoard(ctx, cfg.StopID)
	if err != nil {
		return err
	}
	snap := board.NewSnapshot(*stopBoard, cfg.WalkMinutes, time.Now())
	output.RenderBoard(os.Stdout, snap, output.TableOptions{
		Colors: output.NewColors(getColorMode()),
	})
	return nil
}

// runWatch runs a continuous refresh loop for watch mode
func runWatch(refresh time.Duration, fetchAndRender func() error) error {
	sigChan := output.SetupSignalHandler()
	ticker := time.NewTicker(refresh)
	defer ticker.Stop()

	// Hide cursor during watch mode
	output.HideCursor(os.Stdout)
	defer output.ShowCursor(os.Stdout)

	for {
		output.ClearScreen(os.Stdout)

		now := time.Now()
		fmt.Printf("Last update: %s | Next refresh in %ds | Press Ctrl+C to exit\n\n",
			now.Format("15:04:05"), int(refresh.Seconds()))

		if err := fetchAndRender(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		select {
		case <-ticker.C:
			continue
		case <-sigChan:
			output.ClearScreen(os.Stdout)
			fmt.Println("Watch mode ended.")
			return nil
		}
	}
}

func printPrettyJSON(data []byte) error {
	var prettyJSON interface{}
	if err := json.Unmarshal(data, &prettyJSON); err != nil {
		// If we can't parse it, just print raw
		fmt.Println(string(data))
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(prettyJSON)
}
