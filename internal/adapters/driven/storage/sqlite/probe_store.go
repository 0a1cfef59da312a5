package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/custodia-labs/drivecaffeine/internal/core/domain"
	"github.com/custodia-labs/drivecaffeine/internal/core/ports/driven"
)

// probeStore implements driven.ProbeStore.
type probeStore struct {
	store *Store
}

var _ driven.ProbeStore = (*probeStore)(nil)

// RecordResult logs a probe result.
func (s *probeStore) RecordResult(ctx context.Context, result *domain.ProbeResult) error {
	if result == nil {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO probe_results (drive_id, started_at, ended_at, outcome, error)
		VALUES (?, ?, ?, ?, ?)
	`, result.DriveID.String(),
		result.StartedAt.UTC().Format(time.RFC3339Nano),
		result.EndedAt.UTC().Format(time.RFC3339Nano),
		result.Outcome.String(),
		nullString(result.Error))

	if err != nil {
		return fmt.Errorf("recording probe result: %w", err)
	}
	return nil
}

// GetHistory returns recent results for a drive, or for every drive when
// drive is empty. Results are ordered by insertion, most recent first.
func (s *probeStore) GetHistory(ctx context.Context, drive domain.DriveID, limit int) ([]domain.ProbeResult, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT drive_id, started_at, ended_at, outcome, error
		FROM probe_results
		WHERE ? = '' OR drive_id = ?
		ORDER BY id DESC
		LIMIT ?
	`, drive.String(), drive.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("querying probe history: %w", err)
	}
	defer rows.Close()

	var results []domain.ProbeResult //nolint:prealloc // size unknown from query
	for rows.Next() {
		result, err := scanProbeResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating probe history: %w", err)
	}

	return results, nil
}

// PruneHistory keeps the most recent 'keep' results per drive.
func (s *probeStore) PruneHistory(ctx context.Context, keep int) error {
	_, err := s.store.db.ExecContext(ctx, `
		DELETE FROM probe_results
		WHERE id NOT IN (
			SELECT id FROM (
				SELECT id, ROW_NUMBER() OVER (PARTITION BY drive_id ORDER BY id DESC) as rn
				FROM probe_results
			) WHERE rn <= ?
		)
	`, keep)
	if err != nil {
		return fmt.Errorf("pruning probe history: %w", err)
	}
	return nil
}

// ==================== Helper Functions ====================

// scanProbeResult scans a probe result from *sql.Rows.
func scanProbeResult(rows *sql.Rows) (*domain.ProbeResult, error) {
	var result domain.ProbeResult
	var driveID, startedAt, endedAt, outcome string
	var errMsg sql.NullString

	if err := rows.Scan(&driveID, &startedAt, &endedAt, &outcome, &errMsg); err != nil {
		return nil, fmt.Errorf("scanning probe result: %w", err)
	}

	result.DriveID = domain.DriveID(driveID)
	result.StartedAt = parseTime(startedAt)
	result.EndedAt = parseTime(endedAt)
	result.Outcome = domain.ProbeOutcome(outcome)
	if errMsg.Valid {
		result.Error = errMsg.String
	}

	return &result, nil
}

// parseTime parses an RFC3339 timestamp, returning zero time on error.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// nullString returns nil for empty strings, otherwise the string.
func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
