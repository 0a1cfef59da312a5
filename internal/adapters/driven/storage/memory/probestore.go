package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/drivecaffeine/internal/core/domain"
	"github.com/custodia-labs/drivecaffeine/internal/core/ports/driven"
)

// Ensure ProbeStore implements the interface.
var _ driven.ProbeStore = (*ProbeStore)(nil)

// ProbeStore is an in-memory implementation of driven.ProbeStore.
// Used when history persistence is disabled, and for testing.
type ProbeStore struct {
	mu      sync.RWMutex
	results []domain.ProbeResult // oldest first
}

// NewProbeStore creates a new in-memory probe store.
func NewProbeStore() *ProbeStore {
	return &ProbeStore{}
}

// RecordResult logs a probe result.
func (s *ProbeStore) RecordResult(_ context.Context, result *domain.ProbeResult) error {
	if result == nil {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, *result)
	return nil
}

// GetHistory returns recent results for a drive, most recent first.
// An empty drive matches all drives.
func (s *ProbeStore) GetHistory(_ context.Context, drive domain.DriveID, limit int) ([]domain.ProbeResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.ProbeResult
	for i := len(s.results) - 1; i >= 0; i-- {
		if limit > 0 && len(out) >= limit {
			break
		}
		r := s.results[i]
		if drive != "" && r.DriveID != drive {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// PruneHistory keeps the most recent 'keep' results per drive.
func (s *ProbeStore) PruneHistory(_ context.Context, keep int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[domain.DriveID]int)
	kept := make([]domain.ProbeResult, 0, len(s.results))
	for i := len(s.results) - 1; i >= 0; i-- {
		r := s.results[i]
		if counts[r.DriveID] >= keep {
			continue
		}
		counts[r.DriveID]++
		kept = append(kept, r)
	}

	// Restore oldest-first order.
	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	s.results = kept
	return nil
}
