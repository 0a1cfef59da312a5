package driven

import (
	"context"

	"github.com/custodia-labs/drivecaffeine/internal/core/domain"
)

// ProbeRecorder receives the result of every keep-alive iteration.
// Implementations are observability adapters: keep-alive tasks ignore
// any error they return.
type ProbeRecorder interface {
	Record(ctx context.Context, result *domain.ProbeResult) error
}

// ProbeStore persists probe results.
type ProbeStore interface {
	// RecordResult logs a probe result.
	RecordResult(ctx context.Context, result *domain.ProbeResult) error

	// GetHistory returns recent results for a drive.
	// Results are ordered most recent first. An empty drive matches all drives.
	GetHistory(ctx context.Context, drive domain.DriveID, limit int) ([]domain.ProbeResult, error)

	// PruneHistory keeps the most recent 'keep' results per drive.
	PruneHistory(ctx context.Context, keep int) error
}
