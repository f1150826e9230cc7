package widget

import (
	"context"
	"sync"
	"time"

	"countdown/internal/domain/countdown"
	"countdown/internal/domain/entity"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// FrameMsg is a tea.Msg carrying one tick of one timer.
type FrameMsg struct {
	Generation int
	TimerID    uuid.UUID
	Frame      countdown.Frame
}

// Host runs one countdown per displayed timer. Replacing the timer set
// stops every running countdown and starts a new generation.
type Host struct {
	runner *countdown.Runner
	frames chan FrameMsg

	mu         sync.Mutex
	generation int
	cancel     context.CancelFunc
	wg         sync.WaitGroup
}

// NewHost creates a Host ticking on clock every interval.
func NewHost(clock countdown.Clock, interval time.Duration) *Host {
	return &Host{
		runner: countdown.NewRunner(clock, interval),
		frames: make(chan FrameMsg, 16),
		cancel: func() {},
	}
}

// Replace stops the running countdowns and starts one for each timer.
// It returns the generation stamped on the new frames.
func (h *Host) Replace(timers []*entity.Timer) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.cancel()
	h.wg.Wait()

	h.generation++
	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel

	for _, timer := range timers {
		if timer == nil {
			continue
		}

		h.wg.Add(1)
		go h.run(ctx, h.generation, *timer)
	}

	return h.generation
}

// Stop stops every running countdown.
func (h *Host) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.cancel()
	h.wg.Wait()
}

// WaitForFrame returns a command that waits for the next frame.
func (h *Host) WaitForFrame() tea.Cmd {
	return func() tea.Msg {
		return <-h.frames
	}
}

func (h *Host) run(ctx context.Context, generation int, timer entity.Timer) {
	defer h.wg.Done()

	h.runner.Run(ctx, timer, func(frame countdown.Frame) {
		select {
		case h.frames <- FrameMsg{Generation: generation, TimerID: timer.ID, Frame: frame}:
		case <-ctx.Done():
		}
	})
}
