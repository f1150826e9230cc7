package widget

import (
	"testing"
	"time"

	"countdown/internal/domain/countdown"
	"countdown/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func endsIn(d time.Duration) *time.Time {
	end := baseNow.Add(d)
	return &end
}

func nextFrame(t *testing.T, h *Host) FrameMsg {
	t.Helper()

	msg, ok := runCmd(t, h.WaitForFrame()).(FrameMsg)
	require.True(t, ok)

	return msg
}

func TestHost_RunsEachTimerIndependently(t *testing.T) {
	clock := countdown.NewManualClock(baseNow)
	h := NewHost(clock, time.Second)
	defer h.Stop()

	short := &entity.Timer{ID: uuid.New(), EndTime: endsIn(2 * time.Second)}
	long := &entity.Timer{ID: uuid.New(), EndTime: endsIn(time.Hour)}

	gen := h.Replace([]*entity.Timer{short, long, nil})
	assert.Equal(t, 1, gen)

	remaining := map[uuid.UUID]int64{}
	for range 2 {
		msg := nextFrame(t, h)
		assert.Equal(t, gen, msg.Generation)
		remaining[msg.TimerID] = *msg.Frame.Snapshot.RemainingMs
	}
	assert.Equal(t, int64(2000), remaining[short.ID])
	assert.Equal(t, int64(3_600_000), remaining[long.ID])

	clock.Advance(3 * time.Second)

	phases := map[uuid.UUID]countdown.Phase{}
	for range 6 {
		msg := nextFrame(t, h)
		phases[msg.TimerID] = msg.Frame.Snapshot.Phase
	}
	assert.Equal(t, countdown.PhaseExpired, phases[short.ID])
	assert.Equal(t, countdown.PhaseActive, phases[long.ID])
}

func TestHost_ReplaceStartsNewGeneration(t *testing.T) {
	clock := countdown.NewManualClock(baseNow)
	h := NewHost(clock, time.Second)
	defer h.Stop()

	first := &entity.Timer{ID: uuid.New(), EndTime: endsIn(time.Minute)}
	h.Replace([]*entity.Timer{first})
	assert.Equal(t, 1, nextFrame(t, h).Generation)

	second := &entity.Timer{ID: uuid.New(), EndTime: endsIn(time.Minute)}
	gen := h.Replace([]*entity.Timer{second})
	assert.Equal(t, 2, gen)

	msg := nextFrame(t, h)
	assert.Equal(t, 2, msg.Generation)
	assert.Equal(t, second.ID, msg.TimerID)
}
