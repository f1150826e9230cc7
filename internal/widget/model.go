// Package widget renders a shop's running countdown timers in the terminal,
// the way the storefront widget shows them on a product page.
package widget

import (
	"strings"

	"countdown/internal/domain/countdown"
	"countdown/internal/domain/entity"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// Model is the Bubble Tea model of the storefront host.
type Model struct {
	poller *Poller
	host   *Host
	keys   KeyMap

	spinner    spinner.Model
	loading    bool
	err        error
	timers     []*entity.Timer
	frames     map[uuid.UUID]countdown.Frame
	generation int
	width      int
}

// NewModel creates the root model polling with poller and ticking on host.
func NewModel(poller *Poller, host *Host) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		poller:  poller,
		host:    host,
		keys:    DefaultKeyMap(),
		spinner: sp,
		loading: true,
		frames:  make(map[uuid.UUID]countdown.Frame),
	}
}

// Init starts polling and listening for countdown frames.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.poller.Start(),
		m.host.WaitForFrame(),
	)
}

// Update handles messages from the poller, the host and the keyboard.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.host.Stop()
			m.poller.Stop()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			m.poller.Refresh()
		}
		return m, nil

	case TimersMsg:
		m.loading = false
		if msg.Err != nil {
			// Keep showing the last good timers
			m.err = msg.Err
			return m, m.poller.WaitForNextResult()
		}
		m.err = nil
		m.timers = msg.Timers
		m.frames = make(map[uuid.UUID]countdown.Frame, len(msg.Timers))
		m.generation = m.host.Replace(msg.Timers)
		return m, m.poller.WaitForNextResult()

	case FrameMsg:
		if msg.Generation == m.generation {
			m.frames[msg.TimerID] = msg.Frame
		}
		return m, m.host.WaitForFrame()

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the loading, error or countdown state.
func (m Model) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " " + loadingText)
	case m.err != nil && len(m.timers) == 0:
		b.WriteString(renderError(m.err))
	default:
		cards := m.cards()
		if len(cards) > 0 {
			b.WriteString(lipgloss.JoinVertical(lipgloss.Left, cards...))
		}
		if m.err != nil {
			b.WriteString("\n" + renderError(m.err))
		}
	}

	b.WriteString("\n\n" + m.keys.helpLine() + "\n")

	if m.width > 0 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(b.String())
	}

	return b.String()
}

// cards renders every timer that has ticked and is not hidden.
func (m Model) cards() []string {
	cards := make([]string, 0, len(m.timers))
	for _, timer := range m.timers {
		if timer == nil {
			continue
		}
		frame, ok := m.frames[timer.ID]
		if !ok || frame.View.ShouldHide {
			continue
		}
		cards = append(cards, renderTimer(timer, frame))
	}

	return cards
}
