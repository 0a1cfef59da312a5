// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/drivecaffeine/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the drive and interval menu.
	ViewMenu ViewType = iota
	// ViewHistory lists recent probe results for one drive.
	ViewHistory
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewHistory:
		return "history"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// DrivesLoaded carries the drive list from the service.
type DrivesLoaded struct {
	Drives   []domain.DriveStatus
	Interval domain.Interval
	Err      error
}

// DriveToggled signals a drive was enabled or disabled.
type DriveToggled struct {
	Drive   domain.DriveID
	Enabled bool
	Err     error
}

// IntervalChanged signals the probe interval was changed.
type IntervalChanged struct {
	Interval domain.Interval
	Err      error
}

// HistoryRequested asks the app to show probe history for a drive.
type HistoryRequested struct {
	Drive domain.DriveID
}

// HistoryLoaded carries recent probe results for a drive.
type HistoryLoaded struct {
	Drive   domain.DriveID
	Results []domain.ProbeResult
	Err     error
}

// RefreshTick is sent periodically so mounts and unmounts show up.
type RefreshTick struct{}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// ExitRequested asks the app to stop every keep-alive task and quit.
type ExitRequested struct{}

// Quit signals the application should exit.
type Quit struct {
	Err error
}
