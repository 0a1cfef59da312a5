//go:build windows

package drives

import (
	"context"
	"math/bits"
	"strings"

	"golang.org/x/sys/windows"

	"github.com/custodia-labs/drivecaffeine/internal/core/domain"
	"github.com/custodia-labs/drivecaffeine/internal/core/ports/driven"
)

// Ensure windowsLister implements the interface.
var _ driven.DriveLister = (*windowsLister)(nil)

// windowsLister enumerates drive letters.
type windowsLister struct{}

// NewLister returns the platform drive lister.
func NewLister() driven.DriveLister {
	return &windowsLister{}
}

// List returns fixed and removable drives that have a volume mounted.
// Optical and network drives are skipped.
func (l *windowsLister) List(ctx context.Context) ([]domain.Drive, error) {
	mask, err := windows.GetLogicalDrives()
	if err != nil {
		return nil, err
	}

	drives := make([]domain.Drive, 0, bits.OnesCount32(mask))

	for i := range 26 {
		if mask&(1<<i) == 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		root := string(rune('A'+i)) + ":\\"
		rootPtr, err := windows.UTF16PtrFromString(root)
		if err != nil {
			continue
		}

		driveType := windows.GetDriveType(rootPtr)
		if driveType != windows.DRIVE_FIXED && driveType != windows.DRIVE_REMOVABLE {
			continue
		}

		var volName [windows.MAX_PATH + 1]uint16
		var fsName [windows.MAX_PATH + 1]uint16
		// Fails for an empty card reader slot; such a drive is not listed.
		if err := windows.GetVolumeInformation(
			rootPtr,
			&volName[0], uint32(len(volName)),
			nil, nil, nil,
			&fsName[0], uint32(len(fsName)),
		); err != nil {
			continue
		}

		drives = append(drives, domain.Drive{
			ID:        domain.DriveID(root),
			Label:     windows.UTF16ToString(volName[:]),
			FSType:    strings.ToUpper(windows.UTF16ToString(fsName[:])),
			Removable: driveType == windows.DRIVE_REMOVABLE,
		})
	}

	return drives, nil
}
