package domain

import "strings"

// DriveID names the root path of a storage volume, for example "E:\" or
// "/media/alice/USB". It is the registry key for keep-alive tasks.
type DriveID string

// NewDriveID trims surrounding whitespace from a user-supplied root path.
// An empty result means "no drive" and is ignored by the registry.
func NewDriveID(root string) DriveID {
	return DriveID(strings.TrimSpace(root))
}

// String returns the root path.
func (d DriveID) String() string {
	return string(d)
}

// IsZero reports whether the identifier names no drive.
func (d DriveID) IsZero() bool {
	return strings.TrimSpace(string(d)) == ""
}

// Drive describes a mounted volume as seen by the drive enumerator.
type Drive struct {
	// ID is the root path of the volume.
	ID DriveID

	// Label is the volume label, if the platform exposes one.
	Label string

	// Device is the backing block device (e.g. "/dev/sdb1"). May be empty.
	Device string

	// FSType is the filesystem type (e.g. "vfat", "NTFS").
	FSType string

	// Removable indicates the platform reports the device as removable.
	Removable bool
}

// DisplayName renders the drive as "root (label)".
func (d Drive) DisplayName() string {
	return d.ID.String() + " (" + d.Label + ")"
}

// DriveStatus pairs a drive with its keep-alive state for display.
type DriveStatus struct {
	Drive Drive

	// Enabled indicates a keep-alive task is running for the drive.
	Enabled bool

	// Mounted is false for enabled drives that are not currently present.
	Mounted bool
}
