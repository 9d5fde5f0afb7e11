package board

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/oxonbus/busboard/internal/config"
	"github.com/oxonbus/busboard/internal/models"
	"github.com/oxonbus/busboard/internal/render"
)

// Feed supplies the current departures for a stop.
type Feed interface {
	GetBoard(ctx context.Context, stopID string) (*models.StopBoard, error)
}

// Sink receives finished frames. It is exclusively owned by the loop:
// only the render step writes to it, and the render-then-sleep cycle
// means no overlapping writes can occur.
type Sink interface {
	Init() error
	Render(f render.Frame) error
	Sleep() error
}

// Loop is the single-threaded poll cycle: gate check, fetch, normalize,
// select, render, sleep. Every cycle recomputes its view from the wall
// clock and the live feed; nothing is carried across cycles except the
// gate's transition edge.
type Loop struct {
	cfg  *config.Config
	feed Feed
	sink Sink
	gate *Gate
	now  func() time.Time
}

// NewLoop wires a poll loop for the given feed and sink.
func NewLoop(cfg *config.Config, feed Feed, sink Sink) *Loop {
	return &Loop{
		cfg:  cfg,
		feed: feed,
		sink: sink,
		gate: NewGate(cfg.QuietStart, cfg.QuietEnd),
		now:  time.Now,
	}
}

// Run polls until ctx is cancelled. Cancellation is graceful shutdown:
// the sink is put to sleep best-effort and nil is returned.
func (l *Loop) Run(ctx context.Context) error {
	if err := l.sink.Init(); err != nil {
		return fmt.Errorf("init display: %w", err)
	}
	defer l.shutdown()

	for {
		now := l.now()
		phase, transition := l.gate.Observe(now)

		if phase == PhaseNight {
			if transition == TransitionToNight {
				l.enterNight(now)
			}
			if !l.wait(ctx, l.cfg.QuietRefresh) {
				return nil
			}
			continue
		}

		if transition == TransitionToDay {
			if err := l.sink.Init(); err != nil {
				log.Printf("display wake failed: %v", err)
				if !l.wait(ctx, l.cfg.DayRefresh) {
					return nil
				}
				continue
			}
		}

		if !l.wait(ctx, l.cycle(ctx, now)) {
			return nil
		}
	}
}

// cycle runs one daytime poll and returns the delay before the next.
func (l *Loop) cycle(ctx context.Context, now time.Time) time.Duration {
	stopBoard, err := l.feed.GetBoard(ctx, l.cfg.StopID)
	if err != nil {
		// Transport and parse failures alike: skip this render, retry
		// at the standard cadence.
		log.Printf("fetch %s: %v", l.cfg.StopID, err)
		return l.cfg.DayRefresh
	}

	snap := NewSnapshot(*stopBoard, l.cfg.WalkMinutes, now)

	var frame render.Frame
	if l.cfg.RenderMode == config.ModeList {
		frame = render.List(snap, now)
	} else {
		frame = render.Grid(snap, now, emphasisStyle(l.cfg.Emphasis))
	}

	if err := l.sink.Render(frame); err != nil {
		log.Printf("render: %v", err)
		if err := l.sink.Init(); err != nil {
			log.Printf("display recovery failed: %v", err)
		}
		return l.cfg.DayRefresh
	}

	return NextDelay(snap.EmphasizedEta().Minutes, l.cfg.FastWindowMin, l.cfg.DayRefresh, l.cfg.FastRefresh)
}

// enterNight shows the sleeping screen and puts the sink into low power.
// Postconditions of the DAY->NIGHT transition; the symmetric re-init
// happens on NIGHT->DAY.
func (l *Loop) enterNight(now time.Time) {
	if err := l.sink.Render(render.QuietFrame(now, l.cfg.QuietEnd)); err != nil {
		log.Printf("render night screen: %v", err)
	}
	if err := l.sink.Sleep(); err != nil {
		log.Printf("display sleep: %v", err)
	}
}

// shutdown parks the display. Failures are swallowed so a broken sink
// never masks the reason the loop stopped.
func (l *Loop) shutdown() {
	_ = l.sink.Sleep()
}

// wait sleeps for d or until ctx is cancelled; it reports whether the
// loop should continue.
func (l *Loop) wait(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// emphasisStyle maps the configured emphasis name to the render
// treatment.
func emphasisStyle(name string) render.Emphasis {
	switch name {
	case config.EmphasisFrame:
		return render.EmphasisFrame
	case config.EmphasisScale:
		return render.EmphasisScale
	default:
		return render.EmphasisThick
	}
}
