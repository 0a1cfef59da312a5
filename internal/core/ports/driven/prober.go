package driven

import "github.com/custodia-labs/drivecaffeine/internal/core/domain"

// Prober performs the keep-alive write on a drive root.
type Prober interface {
	// Reachable reports whether the drive root currently exists.
	Reachable(root domain.DriveID) bool

	// Probe writes a uniquely named file in the root and deletes it.
	// Errors are advisory; the caller decides whether to care.
	Probe(root domain.DriveID) error
}
