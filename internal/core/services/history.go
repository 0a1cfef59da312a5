package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/drivecaffeine/internal/core/domain"
	"github.com/custodia-labs/drivecaffeine/internal/core/ports/driven"
	"github.com/custodia-labs/drivecaffeine/internal/core/ports/driving"
)

// Ensure HistoryService implements both interfaces.
var (
	_ driving.HistoryService = (*HistoryService)(nil)
	_ driven.ProbeRecorder   = (*HistoryService)(nil)
)

// DefaultHistoryLimit is used when a caller asks for a non-positive limit.
const DefaultHistoryLimit = 20

// HistoryService records probe results and serves them back.
type HistoryService struct {
	store driven.ProbeStore
	keep  int
}

// NewHistoryService creates a history service that retains keep results
// per drive. A non-positive keep uses domain.DefaultHistoryKeep.
func NewHistoryService(store driven.ProbeStore, keep int) *HistoryService {
	if keep <= 0 {
		keep = domain.DefaultHistoryKeep
	}
	return &HistoryService{
		store: store,
		keep:  keep,
	}
}

// Record persists a result and prunes old entries.
func (s *HistoryService) Record(ctx context.Context, result *domain.ProbeResult) error {
	if result == nil {
		return domain.ErrInvalidInput
	}
	if err := s.store.RecordResult(ctx, result); err != nil {
		return fmt.Errorf("record probe result: %w", err)
	}
	if err := s.store.PruneHistory(ctx, s.keep); err != nil {
		return fmt.Errorf("prune probe history: %w", err)
	}
	return nil
}

// Recent returns recent results for a drive, most recent first.
func (s *HistoryService) Recent(ctx context.Context, drive domain.DriveID, limit int) ([]domain.ProbeResult, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	results, err := s.store.GetHistory(ctx, domain.NewDriveID(drive.String()), limit)
	if err != nil {
		return nil, fmt.Errorf("get probe history: %w", err)
	}
	return results, nil
}

// Last returns the most recent result for the drive, or nil if none.
func (s *HistoryService) Last(ctx context.Context, drive domain.DriveID) (*domain.ProbeResult, error) {
	results, err := s.Recent(ctx, drive, 1)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}
