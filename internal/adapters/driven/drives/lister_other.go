//go:build !linux && !windows

package drives

import (
	"context"
	"os"
	"path/filepath"

	"github.com/custodia-labs/drivecaffeine/internal/core/domain"
	"github.com/custodia-labs/drivecaffeine/internal/core/ports/driven"
)

// volumesLister lists the mount points under a volumes directory.
type volumesLister struct {
	dir string
}

// NewLister returns the platform drive lister.
func NewLister() driven.DriveLister {
	return &volumesLister{dir: "/Volumes"}
}

// List returns each directory under the volumes directory.
func (l *volumesLister) List(ctx context.Context) ([]domain.Drive, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, err
	}

	drives := make([]domain.Drive, 0, len(entries))
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := filepath.Join(l.dir, e.Name())
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			continue
		}
		drives = append(drives, domain.Drive{
			ID:    domain.DriveID(path),
			Label: e.Name(),
		})
	}
	return drives, nil
}
