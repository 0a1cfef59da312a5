package driving

import (
	"context"

	"github.com/custodia-labs/drivecaffeine/internal/core/domain"
)

// HistoryService reads recorded probe results.
type HistoryService interface {
	// Recent returns up to limit results for the drive, most recent first.
	// An empty drive returns results across all drives.
	Recent(ctx context.Context, drive domain.DriveID, limit int) ([]domain.ProbeResult, error)

	// Last returns the most recent result for the drive, or nil if none.
	Last(ctx context.Context, drive domain.DriveID) (*domain.ProbeResult, error)
}
