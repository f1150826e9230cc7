package impl

import (
	"strings"

	"countdown/internal/domain/entity"
	domainerrors "countdown/internal/domain/errors"
	"countdown/internal/usecase"
)

// Field messages reported under VALIDATION_FAILED
const (
	msgTitleRequired  = "Title is required"
	msgWindowRequired = "Either end time or duration must be specified"
	msgEndBeforeStart = "End time must be after start time"
	msgTriggerRange   = "Trigger minutes must be between 1 and 60"
	msgPulseColor     = "Pulse color must be a valid hex color (e.g., #ff0000)"
	msgBannerRequired = "Banner message is required when banner is enabled"
)

const (
	fieldTitle          = "title"
	fieldEndTime        = "endTime"
	fieldDuration       = "duration"
	fieldUrgencyTrigger = "urgencySettings.triggerMinutes"
	fieldUrgencyColor   = "urgencySettings.pulseColor"
	fieldUrgencyBanner  = "urgencySettings.bannerMessage"
)

const (
	minTriggerMinutes = 1
	maxTriggerMinutes = 60
)

// validateTimer checks a merged timer and returns FieldErrors when it is not saveable.
// submitted is the urgency block as sent by the merchant, nil when omitted; its
// trigger and banner message are checked before defaults filled them in.
func validateTimer(timer *entity.Timer, submitted *entity.UrgencySettings) error {
	fields := domainerrors.FieldErrors{}

	if strings.TrimSpace(timer.Title) == "" {
		fields.Add(fieldTitle, msgTitleRequired)
	}

	if !timer.HasWindow() {
		fields.Add(fieldEndTime, msgWindowRequired)
		fields.Add(fieldDuration, msgWindowRequired)
	}

	if timer.StartTime != nil && timer.EndTime != nil && !timer.EndTime.After(*timer.StartTime) {
		fields.Set(fieldEndTime, msgEndBeforeStart)
	}

	urgency := timer.Urgency
	if submitted != nil {
		urgency.TriggerMinutes = submitted.TriggerMinutes
		urgency.BannerMessage = submitted.BannerMessage
	}
	if urgency.Enabled {
		if urgency.TriggerMinutes < minTriggerMinutes || urgency.TriggerMinutes > maxTriggerMinutes {
			fields.Add(fieldUrgencyTrigger, msgTriggerRange)
		}
		if !entity.IsHexColor(urgency.PulseColor) {
			fields.Add(fieldUrgencyColor, msgPulseColor)
		}
		if urgency.ShowBanner && strings.TrimSpace(urgency.BannerMessage) == "" {
			fields.Add(fieldUrgencyBanner, msgBannerRequired)
		}
	}

	return fields.Err()
}

// newTimerFromInput builds a timer for shopID with the creation defaults applied.
func newTimerFromInput(shopID string, input *usecase.TimerInput) *entity.Timer {
	timer := entity.Timer{
		ShopID:              shopID,
		Title:               strings.TrimSpace(input.Title),
		StartTime:           input.StartTime,
		EndTime:             input.EndTime,
		Duration:            input.Duration,
		Loop:                boolOr(input.Loop, false),
		HideAfterCompletion: boolOr(input.HideAfterCompletion, false),
		BeforeMessage:       input.BeforeMessage,
		AfterMessage:        input.AfterMessage,
		ProductIDs:          compactIDs(input.ProductIDs),
		CollectionIDs:       compactIDs(input.CollectionIDs),
		Active:              boolOr(input.Active, true),
	}
	if input.Style != nil {
		timer.Style = *input.Style
	}
	if input.Urgency != nil {
		timer.Urgency = *input.Urgency
	}

	timer = timer.WithDefaults()

	return &timer
}

// applyTimerInput merges input into an existing timer. The schedule is replaced
// as a whole; every other field keeps its stored value when not provided, and
// clearable fields sent as null are reset.
func applyTimerInput(timer *entity.Timer, input *usecase.TimerInput) {
	timer.StartTime = input.StartTime
	timer.EndTime = input.EndTime

	if title := strings.TrimSpace(input.Title); title != "" {
		timer.Title = title
	}
	if input.Duration != nil || input.IsNull(usecase.FieldDuration) {
		timer.Duration = input.Duration
	}
	if input.Loop != nil {
		timer.Loop = *input.Loop
	}
	if input.HideAfterCompletion != nil {
		timer.HideAfterCompletion = *input.HideAfterCompletion
	}
	if input.BeforeMessage != nil || input.IsNull(usecase.FieldBeforeMessage) {
		timer.BeforeMessage = input.BeforeMessage
	}
	if input.AfterMessage != nil || input.IsNull(usecase.FieldAfterMessage) {
		timer.AfterMessage = input.AfterMessage
	}
	if input.Style != nil {
		timer.Style = *input.Style
	}
	if input.Urgency != nil {
		timer.Urgency = *input.Urgency
	}
	if input.ProductIDs != nil {
		timer.ProductIDs = compactIDs(input.ProductIDs)
	}
	if input.CollectionIDs != nil {
		timer.CollectionIDs = compactIDs(input.CollectionIDs)
	}
	if input.Active != nil {
		timer.Active = *input.Active
	}

	*timer = timer.WithDefaults()
}

// compactIDs trims ids and drops blank ones; nil becomes an empty list.
func compactIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}

	return out
}

func boolOr(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}

	return *b
}
