package widget

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"countdown/internal/domain/countdown"
	"countdown/internal/domain/entity"

	tea "github.com/charmbracelet/bubbletea"
)

// fetchTimeout bounds a single fetch of timer records.
const fetchTimeout = 15 * time.Second

// TimersMsg is a tea.Msg sent when a fetch of timer records completes.
type TimersMsg struct {
	Timers []*entity.Timer
	Err    error
	At     time.Time
}

// Poller periodically refreshes the timer records of one shop.
type Poller struct {
	source    TimerSource
	shop      string
	productID string
	interval  time.Duration
	clock     countdown.Clock
	logger    *slog.Logger

	resultCh  chan TimersMsg
	triggerCh chan struct{}
	stopCh    chan struct{}
	mu        sync.Mutex
	running   bool
}

// PollerOptions configures a Poller.
type PollerOptions struct {
	Shop      string
	ProductID string
	Interval  time.Duration
	Clock     countdown.Clock
}

// NewPoller creates a Poller reading from source.
func NewPoller(source TimerSource, opts PollerOptions, logger *slog.Logger) *Poller {
	clock := opts.Clock
	if clock == nil {
		clock = countdown.SystemClock
	}

	return &Poller{
		source:    source,
		shop:      opts.Shop,
		productID: opts.ProductID,
		interval:  opts.Interval,
		clock:     clock,
		logger:    logger,
		resultCh:  make(chan TimersMsg, 4),
		triggerCh: make(chan struct{}, 1),
		stopCh:    make(chan struct{}),
	}
}

// Start launches the polling goroutine and returns a command waiting for
// the first result. Calling Start again is a no-op.
func (p *Poller) Start() tea.Cmd {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return nil
	}
	p.running = true
	p.mu.Unlock()

	go p.poll()

	return p.WaitForNextResult()
}

// Stop halts the polling goroutine.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return
	}

	close(p.stopCh)
	p.running = false
}

// Refresh requests an immediate fetch.
func (p *Poller) Refresh() {
	select {
	case p.triggerCh <- struct{}{}:
	default:
		// A refresh is already pending
	}
}

// WaitForNextResult returns a command that waits for the next fetch result.
func (p *Poller) WaitForNextResult() tea.Cmd {
	return func() tea.Msg {
		select {
		case result := <-p.resultCh:
			return result
		case <-p.stopCh:
			return nil
		}
	}
}

func (p *Poller) poll() {
	interval := p.interval
	if interval <= 0 {
		interval = 30 * time.Second
	}

	ticker := p.clock.NewTicker(interval)
	defer ticker.Stop()

	p.fetch()

	for {
		select {
		case <-p.stopCh:
			return
		case <-ticker.C():
			p.fetch()
		case <-p.triggerCh:
			p.fetch()
		}
	}
}

func (p *Poller) fetch() {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	timers, err := p.source.ActiveTimers(ctx, p.shop, p.productID)
	if err != nil {
		p.logger.Warn("Failed to refresh timers",
			slog.String("shop", p.shop),
			slog.Any("error", err),
		)
	}

	select {
	case p.resultCh <- TimersMsg{Timers: timers, Err: err, At: p.clock.Now()}:
	case <-p.stopCh:
	}
}
