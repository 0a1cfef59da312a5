//go:build linux

package drives

import "github.com/custodia-labs/drivecaffeine/internal/core/ports/driven"

// NewLister returns the platform drive lister.
func NewLister() driven.DriveLister {
	return NewMountLister("", "", "")
}
