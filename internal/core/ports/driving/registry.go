package driving

import (
	"context"

	"github.com/custodia-labs/drivecaffeine/internal/core/domain"
)

// Registry owns the lifecycle of per-drive keep-alive tasks.
// It is the command/query surface consumed by the TUI, CLI and MCP adapters.
type Registry interface {
	// Enable starts a keep-alive task for the drive.
	// Enabling an already-enabled drive or an empty identifier is a no-op.
	Enable(drive domain.DriveID) error

	// Disable cancels and removes the drive's task.
	// Disabling a drive that is not enabled is a no-op.
	Disable(drive domain.DriveID) error

	// Toggle disables an enabled drive or enables a disabled one.
	// Returns whether the drive is enabled afterwards.
	Toggle(drive domain.DriveID) (bool, error)

	// SetInterval updates the global interval and pushes it into every
	// running task. Takes effect from each task's next sleep.
	SetInterval(interval domain.Interval) error

	// ActiveDrives returns a sorted snapshot of the enabled drives.
	ActiveDrives() []domain.DriveID

	// CurrentInterval returns the global interval.
	CurrentInterval() domain.Interval

	// Status returns the interval and active drives in one snapshot.
	Status() domain.KeepAliveStatus

	// Shutdown cancels every task and waits for them to exit, bounded by ctx.
	// After Shutdown, Enable and Toggle return domain.ErrRegistryClosed.
	Shutdown(ctx context.Context) error
}
