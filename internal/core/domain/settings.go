package domain

const unknownDescription = "Unknown"

// DefaultHistoryKeep is the number of probe results retained per drive.
const DefaultHistoryKeep = 200

// KeepAliveSettings holds the startup state of the keep-alive registry.
type KeepAliveSettings struct {
	// Interval is the delay between probes for every drive.
	Interval Interval

	// Drives are the roots enabled when the registry starts.
	Drives []DriveID
}

// HasDrive reports whether the drive is enabled at startup.
func (k KeepAliveSettings) HasDrive(id DriveID) bool {
	for _, d := range k.Drives {
		if d == id {
			return true
		}
	}
	return false
}

// HistorySettings controls the probe history store.
type HistorySettings struct {
	// Enabled turns probe history recording on or off.
	Enabled bool

	// Keep is the number of results retained per drive.
	Keep int
}

// AppSettings holds all user-configurable settings.
type AppSettings struct {
	KeepAlive KeepAliveSettings
	History   HistorySettings
}

// DefaultAppSettings returns sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		KeepAlive: KeepAliveSettings{
			Interval: DefaultInterval,
		},
		History: HistorySettings{
			Enabled: true,
			Keep:    DefaultHistoryKeep,
		},
	}
}

// KeepAliveStatus is a read-only snapshot of the registry for display.
type KeepAliveStatus struct {
	// Interval is the current global interval.
	Interval Interval

	// ActiveDrives are the drives with a running keep-alive task, sorted.
	ActiveDrives []DriveID
}
