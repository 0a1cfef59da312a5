// Package history provides the probe history view for the TUI.
package history

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/drivecaffeine/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/drivecaffeine/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/drivecaffeine/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/drivecaffeine/internal/core/domain"
	"github.com/custodia-labs/drivecaffeine/internal/core/ports/driving"
)

// Limit is the number of results loaded per drive.
const Limit = 50

// ErrHistoryDisabled is shown when no history service is wired.
var ErrHistoryDisabled = errors.New("probe history is disabled")

// View lists recent probe results for one drive.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	history driving.HistoryService

	drive        domain.DriveID
	results      []domain.ProbeResult
	scrollOffset int
	width        int
	height       int
	ready        bool
	loading      bool
	err          error
}

// NewView creates a new history view. history may be nil.
func NewView(s *styles.Styles, history driving.HistoryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:  s,
		keymap:  keymap.DefaultKeyMap(),
		history: history,
		width:   80,
		height:  24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetDrive selects the drive and loads its history.
func (v *View) SetDrive(drive domain.DriveID) tea.Cmd {
	v.drive = drive
	v.results = nil
	v.scrollOffset = 0
	v.err = nil
	return v.load()
}

func (v *View) load() tea.Cmd {
	v.loading = true
	drive := v.drive
	return func() tea.Msg {
		if v.history == nil {
			return messages.HistoryLoaded{Drive: drive, Err: ErrHistoryDisabled}
		}
		results, err := v.history.Recent(context.Background(), drive, Limit)
		return messages.HistoryLoaded{Drive: drive, Results: results, Err: err}
	}
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.HistoryLoaded:
		if msg.Drive != v.drive {
			return v, nil
		}
		v.loading = false
		v.results = msg.Results
		v.err = msg.Err
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Up):
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case key.Matches(msg, v.keymap.Down):
		if v.scrollOffset < v.maxOffset() {
			v.scrollOffset++
		}
	case key.Matches(msg, v.keymap.Refresh):
		return v, v.load()
	case key.Matches(msg, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}
	return v, nil
}

// visibleRows is the number of result lines that fit under the header.
func (v *View) visibleRows() int {
	rows := v.height - 6
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (v *View) maxOffset() int {
	n := len(v.results) - v.visibleRows()
	if n < 0 {
		return 0
	}
	return n
}

// View renders the history list.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Probe history"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(v.drive.String()))
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
	case v.loading && len(v.results) == 0:
		b.WriteString(v.styles.Muted.Render("Loading..."))
		b.WriteString("\n")
	case len(v.results) == 0:
		b.WriteString(v.styles.Muted.Render("No probes recorded yet"))
		b.WriteString("\n")
	}

	end := min(v.scrollOffset+v.visibleRows(), len(v.results))
	for _, r := range v.results[v.scrollOffset:end] {
		b.WriteString(v.renderResult(r))
		b.WriteString("\n")
	}

	return b.String()
}

func (v *View) renderResult(r domain.ProbeResult) string {
	ts := r.StartedAt.Local().Format("2006-01-02 15:04:05")
	line := fmt.Sprintf("%s  %-7s  %5dms", ts, r.Outcome, r.Duration().Milliseconds())

	switch r.Outcome {
	case domain.ProbeWritten:
		return v.styles.Success.Render(line)
	case domain.ProbeSkipped:
		return v.styles.Warning.Render(line)
	case domain.ProbeFailed:
		return v.styles.Error.Render(line + "  " + r.Error)
	}
	return v.styles.Normal.Render(line)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Drive returns the drive being shown.
func (v *View) Drive() domain.DriveID {
	return v.drive
}

// Results returns the loaded results.
func (v *View) Results() []domain.ProbeResult {
	return v.results
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
