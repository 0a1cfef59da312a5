package services

import (
	"errors"
	"fmt"

	"github.com/custodia-labs/drivecaffeine/internal/core/domain"
	"github.com/custodia-labs/drivecaffeine/internal/core/ports/driving"
)

// Reconcile brings the registry in line with the configured startup state:
// it applies the interval, disables drives that are no longer listed and
// enables the listed ones. Errors for individual drives are joined.
func Reconcile(registry driving.Registry, settings *domain.AppSettings) error {
	if settings == nil {
		return domain.ErrInvalidInput
	}

	var errs []error

	if err := registry.SetInterval(settings.KeepAlive.Interval); err != nil {
		errs = append(errs, fmt.Errorf("set interval: %w", err))
	}

	for _, drive := range registry.ActiveDrives() {
		if settings.KeepAlive.HasDrive(drive) {
			continue
		}
		if err := registry.Disable(drive); err != nil {
			errs = append(errs, fmt.Errorf("disable %s: %w", drive, err))
		}
	}

	for _, drive := range settings.KeepAlive.Drives {
		if err := registry.Enable(drive); err != nil {
			errs = append(errs, fmt.Errorf("enable %s: %w", drive, err))
		}
	}

	return errors.Join(errs...)
}
