// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/drivecaffeine/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/drivecaffeine/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/drivecaffeine/internal/core/domain"
)

// State represents the current application state for display.
type State string

const (
	StateReady   State = "ready"
	StateBusy    State = "busy"
	StateError   State = "error"
	StateHistory State = "history"
)

// Bar displays the keep-alive summary and keybinding hints.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	state    State
	message  string
	active   int
	interval domain.Interval
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles:   s,
		keymap:   km,
		state:    StateReady,
		interval: domain.DefaultInterval,
		width:    80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the keep-alive summary or the current error.
func (s *Bar) renderLeft() string {
	switch s.state {
	case StateBusy:
		return s.styles.Muted.Render("Working...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateReady, StateHistory:
	}

	if s.message != "" {
		return s.styles.Normal.Render(s.message)
	}
	return s.Summary()
}

// Summary describes how many drives are kept awake and how often.
func (s *Bar) Summary() string {
	switch s.active {
	case 0:
		return s.styles.Muted.Render("No drives kept awake")
	case 1:
		return s.styles.Normal.Render(fmt.Sprintf("Keeping 1 drive awake every %s", s.interval.Description()))
	default:
		return s.styles.Normal.Render(
			fmt.Sprintf("Keeping %d drives awake every %s", s.active, s.interval.Description()))
	}
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	bindings := s.Hints()
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetKeepAlive records the number of enabled drives and the interval.
func (s *Bar) SetKeepAlive(active int, interval domain.Interval) {
	s.active = active
	s.interval = interval
}

// Active returns the number of enabled drives.
func (s *Bar) Active() int {
	return s.active
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to default state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
}

// Hints lists the key bindings shown on the right.
func (s *Bar) Hints() []key.Binding {
	if s.state == StateHistory {
		return s.keymap.HistoryHelp()
	}
	return s.keymap.ShortHelp()
}
