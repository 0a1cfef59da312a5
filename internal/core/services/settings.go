package services

import (
	"fmt"
	"slices"

	"github.com/custodia-labs/drivecaffeine/internal/core/domain"
	"github.com/custodia-labs/drivecaffeine/internal/core/ports/driven"
	"github.com/custodia-labs/drivecaffeine/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyInterval       = "keepalive.interval"
	keyDrives         = "keepalive.drives"
	keyHistoryEnabled = "history.enabled"
	keyHistoryKeep    = "history.keep"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Missing or invalid values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		KeepAlive: domain.KeepAliveSettings{
			Interval: s.getInterval(defaults.KeepAlive.Interval),
			Drives:   s.getDrives(),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(keyHistoryEnabled, defaults.History.Enabled),
			Keep:    s.getInt(keyHistoryKeep, defaults.History.Keep),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyInterval, settings.KeepAlive.Interval.String()); err != nil {
		return fmt.Errorf("save interval: %w", err)
	}

	drives := make([]string, 0, len(settings.KeepAlive.Drives))
	for _, d := range settings.KeepAlive.Drives {
		drives = append(drives, d.String())
	}
	if err := s.configStore.Set(keyDrives, drives); err != nil {
		return fmt.Errorf("save drives: %w", err)
	}

	if err := s.configStore.Set(keyHistoryEnabled, settings.History.Enabled); err != nil {
		return fmt.Errorf("save history enabled: %w", err)
	}
	if err := s.configStore.Set(keyHistoryKeep, settings.History.Keep); err != nil {
		return fmt.Errorf("save history keep: %w", err)
	}

	return nil
}

// SetInterval updates the startup interval.
func (s *SettingsService) SetInterval(interval domain.Interval) error {
	if !interval.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidInterval, interval)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.KeepAlive.Interval = interval
	return s.Save(settings)
}

// AddDrive adds a drive to the startup set. Adding a drive twice is a no-op.
func (s *SettingsService) AddDrive(drive domain.DriveID) error {
	drive = domain.NewDriveID(drive.String())
	if drive.IsZero() {
		return fmt.Errorf("add drive: %w", domain.ErrInvalidInput)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	if settings.KeepAlive.HasDrive(drive) {
		return nil
	}

	settings.KeepAlive.Drives = append(settings.KeepAlive.Drives, drive)
	slices.Sort(settings.KeepAlive.Drives)
	return s.Save(settings)
}

// RemoveDrive removes a drive from the startup set.
func (s *SettingsService) RemoveDrive(drive domain.DriveID) error {
	drive = domain.NewDriveID(drive.String())

	settings, err := s.Get()
	if err != nil {
		return err
	}

	if !settings.KeepAlive.HasDrive(drive) {
		return fmt.Errorf("drive %s: %w", drive, domain.ErrNotFound)
	}

	settings.KeepAlive.Drives = slices.DeleteFunc(settings.KeepAlive.Drives, func(d domain.DriveID) bool {
		return d == drive
	})
	return s.Save(settings)
}

// SetHistory configures probe history recording.
func (s *SettingsService) SetHistory(enabled bool, keep int) error {
	if keep < 1 {
		return fmt.Errorf("history keep must be at least 1: %w", domain.ErrInvalidInput)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.History.Enabled = enabled
	settings.History.Keep = keep
	return s.Save(settings)
}

// Validate checks the raw stored values rather than the defaulted ones,
// so a typo in the config file is reported instead of silently ignored.
func (s *SettingsService) Validate() error {
	if raw := s.configStore.GetString(keyInterval); raw != "" {
		if _, err := domain.ParseInterval(raw); err != nil {
			return fmt.Errorf("%s: %w", keyInterval, err)
		}
	}

	if val, exists := s.configStore.Get(keyHistoryKeep); exists {
		if s.configStore.GetInt(keyHistoryKeep) < 1 {
			return fmt.Errorf("%s: invalid value %v: %w", keyHistoryKeep, val, domain.ErrInvalidInput)
		}
	}

	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getInterval(defaultVal domain.Interval) domain.Interval {
	val := s.configStore.GetString(keyInterval)
	if val == "" {
		return defaultVal
	}
	interval, err := domain.ParseInterval(val)
	if err != nil {
		return defaultVal
	}
	return interval
}

func (s *SettingsService) getDrives() []domain.DriveID {
	raw := s.configStore.GetStringSlice(keyDrives)
	drives := make([]domain.DriveID, 0, len(raw))
	for _, r := range raw {
		d := domain.NewDriveID(r)
		if d.IsZero() || slices.Contains(drives, d) {
			continue
		}
		drives = append(drives, d)
	}
	return drives
}
