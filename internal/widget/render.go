package widget

import (
	"fmt"
	"strings"

	"countdown/internal/domain/countdown"
	"countdown/internal/domain/entity"

	"github.com/charmbracelet/lipgloss"
)

const (
	loadingText        = "Loading countdown timer..."
	ongoingText        = "Ongoing promotion!"
	bannerFallback     = "Hurry! Only minutes left!"
	bannerTextColor    = "#ffffff"
	pixelsPerCell      = 6
	largeFontThreshold = 20
)

var (
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"})

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}).
			Italic(true)

	unitLabelStyle = lipgloss.NewStyle().Faint(true)
)

// renderTimer draws one timer card for a frame.
func renderTimer(timer *entity.Timer, frame countdown.Frame) string {
	resolved := timer.WithDefaults()
	style := resolved.Style
	view := frame.View

	card := lipgloss.NewStyle().
		Background(lipgloss.Color(style.BackgroundColor)).
		Foreground(lipgloss.Color(style.TextColor)).
		Padding(0, max(1, style.Padding/pixelsPerCell)).
		Border(cardBorder(style)).
		BorderForeground(lipgloss.Color(borderColor(resolved, frame)))

	title := lipgloss.NewStyle().Bold(true)
	if style.FontSize >= largeFontThreshold {
		title = title.Underline(true)
	}

	lines := []string{title.Render(view.Message)}

	switch {
	case view.Phase == countdown.PhaseExpired:
	case view.Ongoing:
		lines = append(lines, ongoingText)
	default:
		lines = append(lines, renderUnits(view.Remaining))
	}

	if view.Banner != nil && view.Phase != countdown.PhaseExpired {
		lines = append(lines, renderBanner(view.Banner))
	}

	return card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderUnits lays out the remaining time; days are shown only when non-zero.
func renderUnits(b countdown.Breakdown) string {
	units := make([]string, 0, 4)
	if b.Days > 0 {
		units = append(units, unit(b.Days, "Days"))
	}
	units = append(units,
		unit(b.Hours, "Hours"),
		unit(b.Minutes, "Minutes"),
		unit(b.Seconds, "Seconds"),
	)

	return strings.Join(units, "  ")
}

func unit(n int64, label string) string {
	return fmt.Sprintf("%d %s", n, unitLabelStyle.Render(label))
}

func renderBanner(banner *countdown.Banner) string {
	color := banner.PulseColor
	if color == "" {
		color = entity.DefaultUrgencyPulseColor
	}
	msg := banner.Message
	if msg == "" {
		msg = bannerFallback
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(color)).
		Foreground(lipgloss.Color(bannerTextColor)).
		Bold(true).
		Padding(0, 1).
		Render(msg)
}

func cardBorder(style entity.TimerStyle) lipgloss.Border {
	if style.BorderRadius > 0 {
		return lipgloss.RoundedBorder()
	}

	return lipgloss.NormalBorder()
}

// borderColor pulses between the urgency colour and the text colour once
// per second while the timer is urgent.
func borderColor(timer entity.Timer, frame countdown.Frame) string {
	if frame.View.IsUrgent && frame.At.Unix()%2 == 0 {
		return timer.Urgency.PulseColor
	}

	return timer.Style.TextColor
}

func renderError(err error) string {
	return errorStyle.Render("Error loading timer: " + err.Error())
}
