// Package countdown derives the live state of a timer from wall-clock time
// and turns it into render-ready values. Everything here is pure: callers own
// the tick and the timer record.
package countdown

import (
	"math"
	"time"

	"countdown/internal/domain/entity"
)

// Phase is the lifecycle state of a timer at a given instant.
type Phase string

const (
	PhaseBefore  Phase = "before"
	PhaseActive  Phase = "active"
	PhaseExpired Phase = "expired"
)

// Snapshot is the state of a timer evaluated at one instant. It is never persisted.
type Snapshot struct {
	Phase Phase `json:"phase"`
	// RemainingMs is the time until the next phase boundary. Nil means the timer
	// is active without a determinate end and must be rendered as ongoing.
	RemainingMs *int64 `json:"remainingMs"`
	// LoopCount is the number of loop cycles entered since EndTime.
	LoopCount int `json:"loopCount"`
}

// Remaining returns the remaining time and whether it is determinate.
func (s Snapshot) Remaining() (time.Duration, bool) {
	if s.RemainingMs == nil {
		return 0, false
	}

	if *s.RemainingMs > math.MaxInt64/int64(time.Millisecond) {
		return time.Duration(math.MaxInt64), true
	}

	return time.Duration(*s.RemainingMs) * time.Millisecond, true
}

// Evaluate derives the snapshot of timer at now. It never fails: orderings such
// as an end before the start are not rejected, the branches are simply followed.
func Evaluate(timer entity.Timer, now time.Time) Snapshot {
	start, end := timer.StartTime, timer.EndTime

	if start != nil && now.Before(*start) {
		return newSnapshot(PhaseBefore, start.Sub(now), 0)
	}

	if end != nil && now.After(*end) {
		cycleMs, ok := loopCycleMs(timer)
		if !ok {
			return newSnapshot(PhaseExpired, 0, 0)
		}

		elapsedMs := now.Sub(*end).Milliseconds()
		loops := elapsedMs / cycleMs

		return newSnapshotMs(PhaseActive, cycleMs-elapsedMs%cycleMs, int(loops)+1)
	}

	switch {
	case end != nil:
		return newSnapshot(PhaseActive, end.Sub(now), 0)
	case timer.Duration != nil && *timer.Duration > 0:
		// Counted from the evaluation instant, not from a fixed anchor.
		return newSnapshotMs(PhaseActive, minutesToMs(*timer.Duration), 0)
	default:
		return Snapshot{Phase: PhaseActive}
	}
}

// loopCycleMs returns the loop period of a looping timer in milliseconds.
func loopCycleMs(timer entity.Timer) (int64, bool) {
	if !timer.Loop || timer.Duration == nil || *timer.Duration <= 0 {
		return 0, false
	}

	return minutesToMs(*timer.Duration), true
}

// minutesToMs converts n minutes to milliseconds, saturating at math.MaxInt64.
func minutesToMs(n int) int64 {
	if int64(n) > math.MaxInt64/msPerMinute {
		return math.MaxInt64
	}

	return int64(n) * msPerMinute
}

func newSnapshot(phase Phase, remaining time.Duration, loopCount int) Snapshot {
	return newSnapshotMs(phase, remaining.Milliseconds(), loopCount)
}

func newSnapshotMs(phase Phase, remainingMs int64, loopCount int) Snapshot {
	ms := max(remainingMs, 0)

	return Snapshot{
		Phase:       phase,
		RemainingMs: &ms,
		LoopCount:   loopCount,
	}
}
