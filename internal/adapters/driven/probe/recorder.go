package probe

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/drivecaffeine/internal/core/domain"
	"github.com/custodia-labs/drivecaffeine/internal/core/ports/driven"
	"github.com/custodia-labs/drivecaffeine/internal/logger"
)

// Ensure LoggingRecorder implements the interface.
var _ driven.ProbeRecorder = (*LoggingRecorder)(nil)

// DefaultRepeatInterval bounds how often an unchanged failure is logged
// again for the same drive.
const DefaultRepeatInterval = 30 * time.Minute

// LoggingRecorder logs probe outcomes and forwards them to the next
// recorder, if any.
//
// Every result is logged at debug level. A change of outcome is logged as
// a warning (failed, unreachable) or info (recovered). Repeated failures
// are logged at most once per repeat interval per drive.
type LoggingRecorder struct {
	next   driven.ProbeRecorder
	repeat time.Duration

	mu     sync.Mutex
	drives map[domain.DriveID]*driveLog
}

type driveLog struct {
	last     domain.ProbeOutcome
	failures *rate.Sometimes
}

// NewLoggingRecorder creates a recorder that forwards to next (may be nil).
func NewLoggingRecorder(next driven.ProbeRecorder, repeat time.Duration) *LoggingRecorder {
	if repeat <= 0 {
		repeat = DefaultRepeatInterval
	}
	return &LoggingRecorder{
		next:   next,
		repeat: repeat,
		drives: make(map[domain.DriveID]*driveLog),
	}
}

// Record logs the result and forwards it.
func (r *LoggingRecorder) Record(ctx context.Context, result *domain.ProbeResult) error {
	if result == nil {
		return domain.ErrInvalidInput
	}

	r.log(result)

	if r.next == nil {
		return nil
	}
	return r.next.Record(ctx, result)
}

func (r *LoggingRecorder) log(result *domain.ProbeResult) {
	drive := result.DriveID.String()
	logger.Debug("probe %s: %s in %s", drive, result.Outcome, result.Duration())

	r.mu.Lock()
	dl, ok := r.drives[result.DriveID]
	if !ok {
		dl = &driveLog{failures: &rate.Sometimes{Interval: r.repeat}}
		r.drives[result.DriveID] = dl
	}
	previous := dl.last
	dl.last = result.Outcome
	defer r.mu.Unlock()

	changed := previous != result.Outcome

	switch result.Outcome {
	case domain.ProbeFailed:
		if changed {
			logger.WithDrive(drive).Warnf("keep-alive probe failed: %s", result.Error)
			// Restart the repeat window from this first failure.
			dl.failures = &rate.Sometimes{Interval: r.repeat}
			dl.failures.Do(func() {})
			return
		}
		dl.failures.Do(func() {
			logger.WithDrive(drive).Warnf("keep-alive probe still failing: %s", result.Error)
		})
	case domain.ProbeSkipped:
		if changed && previous != "" {
			logger.WithDrive(drive).Warn("drive not reachable, will keep trying")
		}
	case domain.ProbeWritten:
		if changed && previous != "" {
			logger.WithDrive(drive).Info("keep-alive probe succeeded again")
		}
	}
}
