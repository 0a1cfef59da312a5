// Package menu provides the drive and interval menu for the TUI.
package menu

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/drivecaffeine/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/drivecaffeine/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/drivecaffeine/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/drivecaffeine/internal/core/domain"
	"github.com/custodia-labs/drivecaffeine/internal/core/ports/driving"
)

// ItemKind distinguishes the entries of the menu.
type ItemKind int

const (
	// ItemDrive toggles keep-alive for one drive.
	ItemDrive ItemKind = iota
	// ItemInterval selects the global probe interval.
	ItemInterval
	// ItemExit stops every task and quits.
	ItemExit
)

// Item represents a single menu entry.
type Item struct {
	Kind     ItemKind
	Drive    domain.DriveStatus
	Interval domain.Interval
}

// View represents the main menu view.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	registry driving.Registry
	drives   driving.DriveService
	settings driving.SettingsService

	statuses []domain.DriveStatus
	interval domain.Interval
	items    []Item
	selected int
	width    int
	height   int
	ready    bool
	loading  bool
	err      error
}

// NewView creates a new menu view. settings may be nil, in which case
// choices only affect the running registry.
func NewView(
	s *styles.Styles,
	registry driving.Registry,
	drives driving.DriveService,
	settings driving.SettingsService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	v := &View{
		styles:   s,
		keymap:   keymap.DefaultKeyMap(),
		registry: registry,
		drives:   drives,
		settings: settings,
		interval: domain.DefaultInterval,
		width:    80,
		height:   24,
	}
	if registry != nil {
		v.interval = registry.CurrentInterval()
	}
	v.rebuild()
	return v
}

// Init loads the drive list.
func (v *View) Init() tea.Cmd {
	return v.Load()
}

// Load returns a command that lists drives and reads the current interval.
func (v *View) Load() tea.Cmd {
	v.loading = true
	return func() tea.Msg {
		if v.drives == nil || v.registry == nil {
			return messages.DrivesLoaded{Err: errors.New("drive service not available")}
		}
		statuses, err := v.drives.List(context.Background())
		return messages.DrivesLoaded{
			Drives:   statuses,
			Interval: v.registry.CurrentInterval(),
			Err:      err,
		}
	}
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.DrivesLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.statuses = msg.Drives
		if msg.Interval.IsValid() {
			v.interval = msg.Interval
		}
		v.rebuild()
		return v, nil

	case messages.DriveToggled:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		return v, v.Load()

	case messages.IntervalChanged:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.interval = msg.Interval
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
		if v.selected > 0 {
			v.selected--
		}
	case key.Matches(msg, v.keymap.Down):
		if v.selected < len(v.items)-1 {
			v.selected++
		}
	case key.Matches(msg, v.keymap.Select):
		return v, v.activate(v.items[v.selected])
	case key.Matches(msg, v.keymap.Refresh):
		return v, v.Load()
	case key.Matches(msg, v.keymap.History):
		item := v.items[v.selected]
		if item.Kind != ItemDrive {
			return v, nil
		}
		return v, func() tea.Msg {
			return messages.HistoryRequested{Drive: item.Drive.Drive.ID}
		}
	case key.Matches(msg, v.keymap.Help):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewHelp}
		}
	case key.Matches(msg, v.keymap.Quit):
		return v, exit
	}

	return v, nil
}

func (v *View) activate(item Item) tea.Cmd {
	switch item.Kind {
	case ItemDrive:
		return v.toggle(item.Drive.Drive.ID)
	case ItemInterval:
		return v.setInterval(item.Interval)
	case ItemExit:
		return exit
	}
	return nil
}

func exit() tea.Msg {
	return messages.ExitRequested{}
}

// toggle flips keep-alive for the drive and mirrors the choice into the
// startup preferences.
func (v *View) toggle(drive domain.DriveID) tea.Cmd {
	return func() tea.Msg {
		enabled, err := v.registry.Toggle(drive)
		if err != nil {
			return messages.DriveToggled{Drive: drive, Err: err}
		}
		if v.settings != nil {
			if enabled {
				err = v.settings.AddDrive(drive)
			} else if err = v.settings.RemoveDrive(drive); errors.Is(err, domain.ErrNotFound) {
				err = nil
			}
		}
		return messages.DriveToggled{Drive: drive, Enabled: enabled, Err: err}
	}
}

func (v *View) setInterval(interval domain.Interval) tea.Cmd {
	return func() tea.Msg {
		if err := v.registry.SetInterval(interval); err != nil {
			return messages.IntervalChanged{Interval: interval, Err: err}
		}
		var err error
		if v.settings != nil {
			err = v.settings.SetInterval(interval)
		}
		return messages.IntervalChanged{Interval: interval, Err: err}
	}
}

// rebuild regenerates the entries, keeping the cursor in range.
func (v *View) rebuild() {
	items := make([]Item, 0, len(v.statuses)+len(domain.Intervals())+1)
	for _, st := range v.statuses {
		items = append(items, Item{Kind: ItemDrive, Drive: st})
	}
	for _, iv := range domain.Intervals() {
		items = append(items, Item{Kind: ItemInterval, Interval: iv})
	}
	items = append(items, Item{Kind: ItemExit})

	v.items = items
	if v.selected >= len(v.items) {
		v.selected = len(v.items) - 1
	}
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("drivecaffeine"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Keeps external drives from spinning down"))
	b.WriteString("\n\n")

	b.WriteString(v.styles.Section.Render("Drives"))
	b.WriteString("\n")
	if len(v.statuses) == 0 {
		if v.loading {
			b.WriteString(v.styles.Muted.Render("  Loading..."))
		} else {
			b.WriteString(v.styles.Muted.Render("  No drives found"))
		}
		b.WriteString("\n")
	}

	for i, item := range v.items {
		if item.Kind == ItemInterval && item.Interval == domain.Intervals()[0] {
			b.WriteString("\n")
			b.WriteString(v.styles.Section.Render("Interval"))
			b.WriteString("\n")
		}
		if item.Kind == ItemExit {
			b.WriteString("\n")
		}
		b.WriteString(v.renderItem(i, item))
		b.WriteString("\n")
	}

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n")
	}

	return b.String()
}

func (v *View) renderItem(i int, item Item) string {
	cursor := "  "
	if i == v.selected {
		cursor = v.styles.Cursor.Render("> ")
	}

	switch item.Kind {
	case ItemDrive:
		return cursor + v.checkbox(item.Drive.Enabled) + " " + v.driveLabel(item.Drive)
	case ItemInterval:
		return cursor + v.radio(item.Interval == v.interval) + " " +
			v.styles.Normal.Render(item.Interval.Description())
	case ItemExit:
		return cursor + v.styles.Normal.Render("Exit")
	}
	return cursor
}

func (v *View) checkbox(on bool) string {
	if on {
		return v.styles.Checked.Render("[x]")
	}
	return v.styles.Muted.Render("[ ]")
}

func (v *View) radio(on bool) string {
	if on {
		return v.styles.Checked.Render("(•)")
	}
	return v.styles.Muted.Render("( )")
}

func (v *View) driveLabel(st domain.DriveStatus) string {
	if !st.Mounted {
		return v.styles.Warning.Render(st.Drive.ID.String() + " (not mounted)")
	}
	if st.Drive.Label == "" {
		return v.styles.Normal.Render(st.Drive.ID.String())
	}
	return v.styles.Normal.Render(st.Drive.DisplayName())
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Items returns the current menu entries.
func (v *View) Items() []Item {
	return v.items
}

// Interval returns the interval shown as selected.
func (v *View) Interval() domain.Interval {
	return v.interval
}

// Drives returns the last loaded drive list.
func (v *View) Drives() []domain.DriveStatus {
	return v.statuses
}

// Err returns the last error shown by the view.
func (v *View) Err() error {
	return v.err
}
