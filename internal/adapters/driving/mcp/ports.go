package mcp

import (
	"github.com/custodia-labs/drivecaffeine/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Registry controls the keep-alive tasks.
	Registry driving.Registry

	// Drives lists mounted drives. Optional.
	Drives driving.DriveService

	// History serves recorded probe results. Optional.
	History driving.HistoryService

	// Settings receives every change as a startup preference, so a config
	// reload does not revert it. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Registry == nil {
		return ErrMissingRegistry
	}
	return nil
}
