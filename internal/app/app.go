package app

import (
	"context"
	"time"

	"github.com/mvantaa/pocketscan/internal/display"
	"github.com/mvantaa/pocketscan/internal/input"
	"github.com/mvantaa/pocketscan/internal/logging"
	"github.com/mvantaa/pocketscan/internal/nav"
	"github.com/mvantaa/pocketscan/internal/render"
	"github.com/mvantaa/pocketscan/internal/scan"
)

// DefaultLoopDelay is the cooperative yield of the reference hardware's loop.
const DefaultLoopDelay = 50 * time.Millisecond

// App wires the sampler, navigation machine, scan coordinator, and display
// sink into the firmware loop.
type App struct {
	sampler *input.Sampler
	machine *nav.Machine
	coord   *scan.Coordinator
	sink    display.Sink

	loopDelay time.Duration
	sleep     func(time.Duration)
}

// New builds the firmware loop. A loopDelay <= 0 falls back to
// DefaultLoopDelay.
func New(sampler *input.Sampler, machine *nav.Machine, coord *scan.Coordinator, sink display.Sink, loopDelay time.Duration) *App {
	if loopDelay <= 0 {
		loopDelay = DefaultLoopDelay
	}
	return &App{
		sampler:   sampler,
		machine:   machine,
		coord:     coord,
		sink:      sink,
		loopDelay: loopDelay,
		sleep:     time.Sleep,
	}
}

// WithSleep replaces the yield function, for tests.
func (a *App) WithSleep(sleep func(time.Duration)) *App {
	a.sleep = sleep
	return a
}

// Run executes the control loop until the context is cancelled. The
// context is only checked between iterations; a blocking scan always runs
// to completion.
func (a *App) Run(ctx context.Context) error {
	a.redraw()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		a.Step(ctx)
		a.sleep(a.loopDelay)
	}
}

// Step performs one loop iteration: sample the buttons, apply at most one
// transition, and honor the auto-refresh timer. Exposed so tests can drive
// the loop with a fake clock.
func (a *App) Step(ctx context.Context) {
	if b, ok := a.sampler.PollAll(); ok {
		a.handleButton(ctx, b)
		return
	}

	if a.coord.NeedsRefresh(a.machine.Screen()) {
		a.refresh(ctx)
	}
}

// handleButton applies one accepted button event and re-renders exactly
// once afterwards.
func (a *App) handleButton(ctx context.Context, b input.Button) {
	from := a.machine.Screen()
	logging.LogButton(b.String(), from.String())

	effect := a.machine.Apply(b)
	logging.LogTransition(from.String(), a.machine.Screen().String(), a.machine.Cursor(), a.machine.Page())

	if effect != nav.EffectNone {
		a.refresh(ctx)
		return
	}
	a.redraw()
}

// refresh runs the blocking scan for the active screen, with the
// interstitial frame shown for its duration, then resets the cursor and
// re-renders.
func (a *App) refresh(ctx context.Context) {
	a.sink.Show(render.Scanning())
	a.coord.Refresh(ctx, a.machine.Screen())
	a.machine.ResetCursor()
	a.redraw()
}

func (a *App) redraw() {
	a.sink.Show(render.Render(
		a.machine.Screen(),
		a.machine.Cursor(),
		a.machine.Page(),
		a.coord.WiFi(),
		a.coord.BLE(),
	))
}
