package driving

import "github.com/custodia-labs/drivecaffeine/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// SetInterval persists the startup interval.
	SetInterval(interval domain.Interval) error

	// AddDrive adds a drive to the startup set.
	AddDrive(drive domain.DriveID) error

	// RemoveDrive removes a drive from the startup set.
	RemoveDrive(drive domain.DriveID) error

	// SetHistory configures probe history recording.
	SetHistory(enabled bool, keep int) error

	// Validate checks the stored settings.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
