package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/custodia-labs/drivecaffeine/internal/core/domain"
	"github.com/custodia-labs/drivecaffeine/internal/core/ports/driven"
	"github.com/custodia-labs/drivecaffeine/internal/core/ports/driving"
)

// Ensure DriveService implements the interface.
var _ driving.DriveService = (*DriveService)(nil)

// DriveService joins the mounted volumes with the registry's enabled set.
type DriveService struct {
	lister   driven.DriveLister
	registry driving.Registry
}

// NewDriveService creates a new drive service.
func NewDriveService(lister driven.DriveLister, registry driving.Registry) *DriveService {
	return &DriveService{
		lister:   lister,
		registry: registry,
	}
}

// List returns every mounted drive, then any enabled drive that is not
// mounted right now, ordered by root.
func (s *DriveService) List(ctx context.Context) ([]domain.DriveStatus, error) {
	drives, err := s.lister.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list drives: %w", err)
	}

	active := s.registry.ActiveDrives()

	statuses := make([]domain.DriveStatus, 0, len(drives)+len(active))
	seen := make(map[domain.DriveID]bool, len(drives))

	for _, d := range drives {
		if seen[d.ID] {
			continue
		}
		seen[d.ID] = true
		statuses = append(statuses, domain.DriveStatus{
			Drive:   d,
			Enabled: slices.Contains(active, d.ID),
			Mounted: true,
		})
	}

	for _, id := range active {
		if seen[id] {
			continue
		}
		statuses = append(statuses, domain.DriveStatus{
			Drive:   domain.Drive{ID: id},
			Enabled: true,
			Mounted: false,
		})
	}

	slices.SortFunc(statuses, func(a, b domain.DriveStatus) int {
		return strings.Compare(a.Drive.ID.String(), b.Drive.ID.String())
	})

	return statuses, nil
}
