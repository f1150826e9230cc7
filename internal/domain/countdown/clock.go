package countdown

import (
	"sync"
	"time"
)

// Ticker delivers ticks until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock provides time-related operations.
// This interface lets tests advance virtual time instead of sleeping.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

// SystemClock is the default Clock implementation using the standard library.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) NewTicker(d time.Duration) Ticker {
	return &systemTicker{ticker: time.NewTicker(d)}
}

type systemTicker struct {
	ticker *time.Ticker
}

func (t *systemTicker) C() <-chan time.Time {
	return t.ticker.C
}

func (t *systemTicker) Stop() {
	t.ticker.Stop()
}

// ManualClock is a Clock whose time only moves when Advance is called.
// Tickers are unbuffered: Advance blocks until each due tick is received
// or the ticker is stopped, so tick delivery is deterministic.
type ManualClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*manualTicker
}

// NewManualClock creates a ManualClock set to now.
func NewManualClock(now time.Time) *ManualClock {
	return &ManualClock{now: now}
}

// Now returns the current virtual time.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

// NewTicker creates a ticker firing every d of virtual time.
func (c *ManualClock) NewTicker(d time.Duration) Ticker {
	if d <= 0 {
		panic("countdown: non-positive interval for NewTicker")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	t := &manualTicker{
		period: d,
		next:   c.now.Add(d),
		ch:     make(chan time.Time),
		done:   make(chan struct{}),
	}
	c.tickers = append(c.tickers, t)

	return t
}

// Advance moves virtual time forward by d, firing due ticks in time order.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		t := c.nextDue(target)
		if t == nil {
			c.now = target
			c.mu.Unlock()

			return
		}
		at := t.next
		t.next = t.next.Add(t.period)
		c.now = at
		c.mu.Unlock()

		select {
		case t.ch <- at:
		case <-t.done:
		}
	}
}

// nextDue returns the live ticker with the earliest tick not after target.
func (c *ManualClock) nextDue(target time.Time) *manualTicker {
	var due *manualTicker
	live := c.tickers[:0]
	for _, t := range c.tickers {
		if t.stopped() {
			continue
		}
		live = append(live, t)
		if t.next.After(target) {
			continue
		}
		if due == nil || t.next.Before(due.next) {
			due = t
		}
	}
	c.tickers = live

	return due
}

type manualTicker struct {
	period time.Duration
	next   time.Time
	ch     chan time.Time
	done   chan struct{}
	once   sync.Once
}

func (t *manualTicker) C() <-chan time.Time {
	return t.ch
}

func (t *manualTicker) Stop() {
	t.once.Do(func() { close(t.done) })
}

func (t *manualTicker) stopped() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}
