package countdown

import (
	"testing"
	"time"

	"countdown/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		name string
		ms   *int64
		want Breakdown
	}{
		{name: "nil", ms: nil, want: Breakdown{}},
		{name: "zero", ms: ptr(int64(0)), want: Breakdown{}},
		{name: "negative", ms: ptr(int64(-1500)), want: Breakdown{}},
		{name: "five seconds", ms: ptr(int64(5000)), want: Breakdown{Seconds: 5}},
		{name: "sub-second floors", ms: ptr(int64(999)), want: Breakdown{}},
		{
			name: "mixed units",
			ms:   ptr(int64(2*86_400_000 + 3*3_600_000 + 4*60_000 + 5*1_000 + 678)),
			want: Breakdown{Days: 2, Hours: 3, Minutes: 4, Seconds: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRemaining(tt.ms))
		})
	}
}

func TestFormatRemaining_RoundTrip(t *testing.T) {
	for _, ms := range []int64{1, 999, 1000, 59_999, 3_599_999, 86_399_999, 86_400_000, 123_456_789, 987_654_321_012} {
		b := FormatRemaining(&ms)
		total := b.Days*86_400_000 + b.Hours*3_600_000 + b.Minutes*60_000 + b.Seconds*1_000

		assert.LessOrEqual(t, total, ms)
		assert.Less(t, ms, total+1_000)
		assert.Less(t, b.Hours, int64(24))
		assert.Less(t, b.Minutes, int64(60))
		assert.Less(t, b.Seconds, int64(60))
	}
}

func TestPresent_Messages(t *testing.T) {
	custom := entity.Timer{BeforeMessage: ptr("Sale starts"), AfterMessage: ptr("Sale over")}

	tests := []struct {
		name  string
		timer entity.Timer
		phase Phase
		want  string
	}{
		{name: "before default", phase: PhaseBefore, want: DefaultBeforeMessage},
		{name: "active default", phase: PhaseActive, want: DefaultActiveMessage},
		{name: "expired default", phase: PhaseExpired, want: DefaultAfterMessage},
		{name: "before custom", timer: custom, phase: PhaseBefore, want: "Sale starts"},
		{name: "active reuses before message", timer: custom, phase: PhaseActive, want: "Sale starts"},
		{name: "expired custom", timer: custom, phase: PhaseExpired, want: "Sale over"},
		{name: "empty message is kept", timer: entity.Timer{AfterMessage: ptr("")}, phase: PhaseExpired, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := Present(tt.timer, Snapshot{Phase: tt.phase, RemainingMs: ptr(int64(0))})
			assert.Equal(t, tt.want, view.Message)
		})
	}
}

func TestPresent_ShouldHide(t *testing.T) {
	timer := entity.Timer{EndTime: at(-time.Second), HideAfterCompletion: true}

	view := Present(timer, Evaluate(timer, baseNow))
	assert.Equal(t, PhaseExpired, view.Phase)
	assert.True(t, view.ShouldHide)

	timer.HideAfterCompletion = false
	assert.False(t, Present(timer, Evaluate(timer, baseNow)).ShouldHide)

	timer = entity.Timer{EndTime: at(time.Minute), HideAfterCompletion: true}
	assert.False(t, Present(timer, Evaluate(timer, baseNow)).ShouldHide)
}

func TestPresent_Urgency(t *testing.T) {
	urgency := entity.UrgencySettings{
		Enabled:        true,
		TriggerMinutes: 5,
		PulseColor:     "#ff0000",
		BannerMessage:  "Hurry!",
	}

	tests := []struct {
		name       string
		urgency    entity.UrgencySettings
		snap       Snapshot
		wantUrgent bool
		wantBanner bool
	}{
		{
			name:       "four minutes left",
			urgency:    urgency,
			snap:       Snapshot{Phase: PhaseActive, RemainingMs: ptr(int64(240_000))},
			wantUrgent: true,
		},
		{
			name:       "threshold is inclusive on whole minutes",
			urgency:    urgency,
			snap:       Snapshot{Phase: PhaseActive, RemainingMs: ptr(int64(5*60_000 + 59_999))},
			wantUrgent: true,
		},
		{
			name:    "six minutes left",
			urgency: urgency,
			snap:    Snapshot{Phase: PhaseActive, RemainingMs: ptr(int64(6 * 60_000))},
		},
		{
			name:    "disabled",
			urgency: entity.UrgencySettings{TriggerMinutes: 5},
			snap:    Snapshot{Phase: PhaseActive, RemainingMs: ptr(int64(1000))},
		},
		{
			name:    "before phase is never urgent",
			urgency: urgency,
			snap:    Snapshot{Phase: PhaseBefore, RemainingMs: ptr(int64(1000))},
		},
		{
			name:    "expired is never urgent",
			urgency: urgency,
			snap:    Snapshot{Phase: PhaseExpired, RemainingMs: ptr(int64(0))},
		},
		{
			name:    "ongoing is never urgent",
			urgency: urgency,
			snap:    Snapshot{Phase: PhaseActive},
		},
		{
			name: "banner when enabled",
			urgency: entity.UrgencySettings{
				Enabled:        true,
				TriggerMinutes: 5,
				PulseColor:     "#00ff00",
				ShowBanner:     true,
				BannerMessage:  "Last call",
			},
			snap:       Snapshot{Phase: PhaseActive, RemainingMs: ptr(int64(60_000))},
			wantUrgent: true,
			wantBanner: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := Present(entity.Timer{Urgency: tt.urgency}, tt.snap)

			assert.Equal(t, tt.wantUrgent, view.IsUrgent)
			if !tt.wantBanner {
				assert.Nil(t, view.Banner)

				return
			}

			require.NotNil(t, view.Banner)
			assert.Equal(t, tt.urgency.BannerMessage, view.Banner.Message)
			assert.Equal(t, tt.urgency.PulseColor, view.Banner.PulseColor)
		})
	}
}

func TestPresent_Scenarios(t *testing.T) {
	t.Run("active five seconds", func(t *testing.T) {
		frame := Tick(entity.Timer{EndTime: at(5 * time.Second)}, baseNow)

		assert.Equal(t, PhaseActive, frame.View.Phase)
		assert.Equal(t, Breakdown{Seconds: 5}, frame.View.Remaining)
		assert.False(t, frame.View.Ongoing)
	})

	t.Run("looping timer carries loop count", func(t *testing.T) {
		frame := Tick(entity.Timer{EndTime: at(-time.Second), Loop: true, Duration: intPtr(1)}, baseNow)

		assert.Equal(t, 1, frame.View.LoopCount)
		assert.Equal(t, Breakdown{Seconds: 59}, frame.View.Remaining)
	})

	t.Run("no window renders as ongoing", func(t *testing.T) {
		frame := Tick(entity.Timer{}, baseNow)

		assert.True(t, frame.View.Ongoing)
		assert.Equal(t, Breakdown{}, frame.View.Remaining)
		assert.Equal(t, DefaultActiveMessage, frame.View.Message)
	})
}
