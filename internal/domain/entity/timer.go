// Package entity contains the core business objects of the project.
package entity

import (
	"regexp"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Style and urgency defaults applied when a timer is created or loaded without them.
const (
	DefaultBackgroundColor = "#000000"
	DefaultTextColor       = "#ffffff"
	DefaultFontFamily      = "Arial"
	DefaultFontSize        = 16
	DefaultBorderRadius    = 4
	DefaultPadding         = 12

	DefaultUrgencyTriggerMinutes = 5
	DefaultUrgencyPulseColor     = "#ff0000"
	DefaultUrgencyBannerMessage  = "Hurry! Time is running out!"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// IsHexColor reports whether s is a #RRGGBB colour.
func IsHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

// Timer is a merchant-owned countdown shown on the storefront.
type Timer struct {
	ID                  uuid.UUID       `json:"id"`                  // The Global Unique Identifier (GUID) for the timer.
	ShopID              string          `json:"shopId"`              // The shop domain that owns this timer.
	Title               string          `json:"title"`               // Display name in the admin.
	StartTime           *time.Time      `json:"startTime"`           // The timer is pending before this instant.
	EndTime             *time.Time      `json:"endTime"`             // The primary window ends here.
	Duration            *int            `json:"duration"`            // Minutes; alternative to EndTime and the loop cycle length.
	Loop                bool            `json:"loop"`                // Restart every Duration minutes once EndTime has passed.
	HideAfterCompletion bool            `json:"hideAfterCompletion"` // Suppress rendering once expired.
	BeforeMessage       *string         `json:"beforeMessage"`       // Shown while pending or active.
	AfterMessage        *string         `json:"afterMessage"`        // Shown once expired.
	Style               TimerStyle      `json:"style"`               // Presentation attributes.
	Urgency             UrgencySettings `json:"urgencySettings"`     // Controls the urgency signal.
	ProductIDs          []string        `json:"productIds"`          // Targeted products; empty means every product.
	CollectionIDs       []string        `json:"collectionIds"`       // Targeted collections.
	Active              bool            `json:"active"`              // Merchant-level on/off switch.
	CreatedAt           time.Time       `json:"createdAt"`           // Timestamp of when this timer was created.
	UpdatedAt           time.Time       `json:"updatedAt"`           // Timestamp of the last modification.
}

// TimerStyle holds the visual attributes of a rendered timer.
type TimerStyle struct {
	BackgroundColor string `json:"backgroundColor" validate:"omitempty,hexrgb"`
	TextColor       string `json:"textColor" validate:"omitempty,hexrgb"`
	FontFamily      string `json:"fontFamily" validate:"max=100"`
	FontSize        int    `json:"fontSize" validate:"min=0,max=200"`
	BorderRadius    int    `json:"borderRadius" validate:"min=0,max=100"`
	Padding         int    `json:"padding" validate:"min=0,max=100"`
}

// UrgencySettings configures the urgency signal raised near the end of a countdown.
type UrgencySettings struct {
	Enabled        bool   `json:"enabled"`
	TriggerMinutes int    `json:"triggerMinutes"`
	PulseColor     string `json:"pulseColor"`
	ShowBanner     bool   `json:"showBanner"`
	BannerMessage  string `json:"bannerMessage"`
}

// WithDefaults returns a copy of the style with zero values replaced by defaults.
func (s TimerStyle) WithDefaults() TimerStyle {
	if s.BackgroundColor == "" {
		s.BackgroundColor = DefaultBackgroundColor
	}
	if s.TextColor == "" {
		s.TextColor = DefaultTextColor
	}
	if s.FontFamily == "" {
		s.FontFamily = DefaultFontFamily
	}
	if s.FontSize == 0 {
		s.FontSize = DefaultFontSize
	}
	if s.BorderRadius == 0 {
		s.BorderRadius = DefaultBorderRadius
	}
	if s.Padding == 0 {
		s.Padding = DefaultPadding
	}

	return s
}

// WithDefaults returns a copy of the settings with zero values replaced by defaults.
// Enabled and ShowBanner are left as given.
func (u UrgencySettings) WithDefaults() UrgencySettings {
	if u.TriggerMinutes == 0 {
		u.TriggerMinutes = DefaultUrgencyTriggerMinutes
	}
	if u.PulseColor == "" {
		u.PulseColor = DefaultUrgencyPulseColor
	}
	if u.BannerMessage == "" {
		u.BannerMessage = DefaultUrgencyBannerMessage
	}

	return u
}

// WithDefaults returns a copy of the timer with style and urgency defaults resolved
// and nil targeting lists replaced by empty ones.
func (t Timer) WithDefaults() Timer {
	t.Style = t.Style.WithDefaults()
	t.Urgency = t.Urgency.WithDefaults()
	if t.ProductIDs == nil {
		t.ProductIDs = []string{}
	}
	if t.CollectionIDs == nil {
		t.CollectionIDs = []string{}
	}

	return t
}

// AppliesTo reports whether the timer targets the given product.
// A timer without product targets applies to every product.
func (t Timer) AppliesTo(productID string) bool {
	if len(t.ProductIDs) == 0 {
		return true
	}

	return slices.Contains(t.ProductIDs, productID)
}

// HasWindow reports whether the timer has a determinate active window.
func (t Timer) HasWindow() bool {
	return t.EndTime != nil || (t.Duration != nil && *t.Duration > 0)
}
