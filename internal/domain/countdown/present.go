package countdown

import (
	"countdown/internal/domain/entity"
)

// Fallback messages used when a timer does not carry its own.
const (
	DefaultBeforeMessage = "Coming soon!"
	DefaultActiveMessage = "Limited time offer!"
	DefaultAfterMessage  = "Offer has ended"
)

const (
	msPerSecond = int64(1_000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// Breakdown is a remaining duration split into calendar units.
type Breakdown struct {
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
}

// Banner is the urgency banner shown while a timer is urgent.
type Banner struct {
	Message    string `json:"message"`
	PulseColor string `json:"pulseColor"`
}

// View holds everything a host needs to render a timer for one tick.
type View struct {
	Phase      Phase     `json:"phase"`
	Message    string    `json:"message"`
	Remaining  Breakdown `json:"remaining"`
	LoopCount  int       `json:"loopCount"`
	Ongoing    bool      `json:"ongoing"`
	ShouldHide bool      `json:"shouldHide"`
	IsUrgent   bool      `json:"isUrgent"`
	Banner     *Banner   `json:"banner,omitempty"`
}

// FormatRemaining splits ms into days, hours, minutes and seconds.
// Nil and non-positive input yield zero.
func FormatRemaining(ms *int64) Breakdown {
	if ms == nil || *ms <= 0 {
		return Breakdown{}
	}

	v := *ms

	return Breakdown{
		Days:    v / msPerDay,
		Hours:   v % msPerDay / msPerHour,
		Minutes: v % msPerHour / msPerMinute,
		Seconds: v % msPerMinute / msPerSecond,
	}
}

// Present derives the render-ready view of a snapshot. The timer's urgency
// settings are used as given; resolve defaults before calling.
func Present(timer entity.Timer, snap Snapshot) View {
	view := View{
		Phase:      snap.Phase,
		Message:    message(timer, snap.Phase),
		Remaining:  FormatRemaining(snap.RemainingMs),
		LoopCount:  snap.LoopCount,
		Ongoing:    snap.Phase == PhaseActive && snap.RemainingMs == nil,
		ShouldHide: snap.Phase == PhaseExpired && timer.HideAfterCompletion,
		IsUrgent:   isUrgent(timer.Urgency, snap),
	}

	if view.IsUrgent && timer.Urgency.ShowBanner {
		view.Banner = &Banner{
			Message:    timer.Urgency.BannerMessage,
			PulseColor: timer.Urgency.PulseColor,
		}
	}

	return view
}

func message(timer entity.Timer, phase Phase) string {
	switch phase {
	case PhaseBefore:
		return valueOr(timer.BeforeMessage, DefaultBeforeMessage)
	case PhaseExpired:
		return valueOr(timer.AfterMessage, DefaultAfterMessage)
	default:
		return valueOr(timer.BeforeMessage, DefaultActiveMessage)
	}
}

func isUrgent(urgency entity.UrgencySettings, snap Snapshot) bool {
	if snap.Phase != PhaseActive || !urgency.Enabled || snap.RemainingMs == nil {
		return false
	}

	return *snap.RemainingMs/msPerMinute <= int64(urgency.TriggerMinutes)
}

func valueOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}

	return *s
}
