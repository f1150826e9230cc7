package countdown

import (
	"context"
	"time"

	"countdown/internal/domain/entity"
)

// DefaultTickInterval is the nominal render cadence of a live countdown.
const DefaultTickInterval = time.Second

// Frame is one evaluation of a timer, ready to render.
type Frame struct {
	At       time.Time `json:"at"`
	Snapshot Snapshot  `json:"snapshot"`
	View     View      `json:"view"`
}

// Tick evaluates and presents timer at now.
func Tick(timer entity.Timer, now time.Time) Frame {
	snap := Evaluate(timer, now)

	return Frame{
		At:       now,
		Snapshot: snap,
		View:     Present(timer, snap),
	}
}

// Runner drives the live countdown of a single timer on a Clock.
// Runners keep no shared state, so any number may run side by side.
type Runner struct {
	clock    Clock
	interval time.Duration
}

// NewRunner creates a Runner ticking every interval on clock.
func NewRunner(clock Clock, interval time.Duration) *Runner {
	if clock == nil {
		clock = SystemClock
	}
	if interval <= 0 {
		interval = DefaultTickInterval
	}

	return &Runner{clock: clock, interval: interval}
}

// Run emits a frame immediately and then on every tick until ctx is done.
// Defaults of the timer are resolved once before the first frame.
func (r *Runner) Run(ctx context.Context, timer entity.Timer, emit func(Frame)) {
	timer = timer.WithDefaults()

	ticker := r.clock.NewTicker(r.interval)
	defer ticker.Stop()

	emit(Tick(timer, r.clock.Now()))

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C():
			emit(Tick(timer, now))
		}
	}
}
