package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/drivecaffeine/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/drivecaffeine/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/drivecaffeine/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/drivecaffeine/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/drivecaffeine/internal/adapters/driving/tui/views/history"
	"github.com/custodia-labs/drivecaffeine/internal/adapters/driving/tui/views/menu"
)

const (
	// RefreshInterval is how often the drive list is re-read so that
	// plugged and unplugged drives show up without a keypress.
	RefreshInterval = 5 * time.Second

	// ShutdownTimeout bounds how long Exit waits for keep-alive tasks.
	ShutdownTimeout = 5 * time.Second
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles    *styles.Styles
	menuView  *menu.View
	history   *history.View
	statusBar *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool

	// exiting is set once shutdown has been requested.
	exiting bool

	// shutdownErr is the result of stopping the registry on exit.
	shutdownErr error

	refresh time.Duration
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	bar := status.NewBar(s, keymap.DefaultKeyMap())
	st := ports.Registry.Status()
	bar.SetKeepAlive(len(st.ActiveDrives), st.Interval)

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		menuView:    menu.NewView(s, ports.Registry, ports.Drives, ports.Settings),
		history:     history.NewView(s, ports.History),
		statusBar:   bar,
		currentView: messages.ViewMenu,
		refresh:     RefreshInterval,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("drivecaffeine"),
		a.menuView.Init(),
		a.tick(),
	)
}

func (a *App) tick() tea.Cmd {
	return tea.Tick(a.refresh, func(time.Time) tea.Msg {
		return messages.RefreshTick{}
	})
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.menuView.SetDimensions(msg.Width, msg.Height-1)
		a.history.SetDimensions(msg.Width, msg.Height-1)
		a.statusBar.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, a.exit()
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
			return a, cmd

		case messages.ViewHistory:
			a.history, cmd = a.history.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			if msg.Type == tea.KeyEsc || msg.String() == "?" {
				a.currentView = messages.ViewMenu
			}
			return a, nil
		}
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewMenu {
			a.statusBar.SetState(status.StateReady)
			return a, a.menuView.Load()
		}
		return a, nil

	case messages.HistoryRequested:
		a.currentView = messages.ViewHistory
		a.statusBar.SetState(status.StateHistory)
		return a, a.history.SetDrive(msg.Drive)

	case messages.HistoryLoaded:
		a.history, cmd = a.history.Update(msg)
		return a, cmd

	case messages.RefreshTick:
		if a.exiting {
			return a, nil
		}
		if a.currentView == messages.ViewMenu {
			return a, tea.Batch(a.menuView.Load(), a.tick())
		}
		return a, a.tick()

	case messages.DrivesLoaded:
		a.menuView, cmd = a.menuView.Update(msg)
		a.setStatusFrom(msg.Err)
		if msg.Err == nil {
			st := a.ports.Registry.Status()
			a.statusBar.SetKeepAlive(len(st.ActiveDrives), st.Interval)
		}
		return a, cmd

	case messages.DriveToggled:
		a.menuView, cmd = a.menuView.Update(msg)
		a.setStatusFrom(msg.Err)
		return a, cmd

	case messages.IntervalChanged:
		a.menuView, cmd = a.menuView.Update(msg)
		a.setStatusFrom(msg.Err)
		if msg.Err == nil {
			a.statusBar.SetKeepAlive(a.statusBar.Active(), msg.Interval)
		}
		return a, cmd

	case messages.ErrorOccurred:
		a.setStatusFrom(msg.Err)
		return a, nil

	case messages.ExitRequested:
		return a, a.exit()

	case messages.Quit:
		a.shutdownErr = msg.Err
		return a, tea.Quit
	}

	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewHistory:
		a.history, cmd = a.history.Update(msg)
	case messages.ViewHelp:
	}

	return a, cmd
}

// exit stops every keep-alive task before quitting.
func (a *App) exit() tea.Cmd {
	if a.exiting {
		return nil
	}
	a.exiting = true
	a.statusBar.SetState(status.StateBusy)

	registry := a.ports.Registry
	parent := a.ctx
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), ShutdownTimeout)
		defer cancel()
		return messages.Quit{Err: registry.Shutdown(ctx)}
	}
}

func (a *App) setStatusFrom(err error) {
	if err != nil {
		a.err = err
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(err.Error())
		return
	}
	if a.statusBar.State() == status.StateError {
		a.statusBar.Clear()
	}
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewHistory:
		body = a.history.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.menuView.View()
	}
	return body + "\n" + a.statusBar.View()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Menu:
  j/k, ↑/↓       Navigate
  enter, space   Toggle drive or pick interval
  h              Probe history for the selected drive
  r              Refresh drive list
  q, ctrl+c      Stop keeping drives awake and exit

History:
  j/k, ↑/↓       Scroll
  r              Reload
  esc            Back to menu

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && a.ctx.Err() != nil {
			return nil
		}
		return err
	}
	return a.shutdownErr
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// Exiting reports whether shutdown has been requested.
func (a *App) Exiting() bool {
	return a.exiting
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.Update(tea.WindowSizeMsg{Width: width, Height: height})
}
