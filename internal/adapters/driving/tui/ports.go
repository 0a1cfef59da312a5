// Package tui provides an interactive terminal menu for drivecaffeine.
// It replaces the system tray menu: drive checkboxes, an interval radio
// group and an exit entry that shuts the registry down.
package tui

import (
	"github.com/custodia-labs/drivecaffeine/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Registry controls the keep-alive tasks.
	Registry driving.Registry

	// Drives lists mounted drives with their keep-alive state.
	Drives driving.DriveService

	// History serves recorded probe results. Optional.
	History driving.HistoryService

	// Settings persists menu choices as startup preferences. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the required services.
func NewPorts(registry driving.Registry, drives driving.DriveService) *Ports {
	return &Ports{
		Registry: registry,
		Drives:   drives,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Registry == nil {
		return ErrMissingRegistry
	}
	if p.Drives == nil {
		return ErrMissingDriveService
	}
	return nil
}
