package domain

import "time"

// ProbeExtension is the suffix of every transient probe file.
const ProbeExtension = ".caffeine"

// ProbeOutcome describes what happened during one keep-alive iteration.
type ProbeOutcome string

// Probe outcomes.
const (
	// ProbeWritten means the probe file was written and deleted.
	ProbeWritten ProbeOutcome = "written"

	// ProbeSkipped means the drive root was not reachable.
	ProbeSkipped ProbeOutcome = "skipped"

	// ProbeFailed means the drive was reachable but the write or delete failed.
	ProbeFailed ProbeOutcome = "failed"
)

// String returns the string representation.
func (o ProbeOutcome) String() string {
	return string(o)
}

// IsValid returns true if the outcome is recognised.
func (o ProbeOutcome) IsValid() bool {
	switch o {
	case ProbeWritten, ProbeSkipped, ProbeFailed:
		return true
	default:
		return false
	}
}

// ProbeResult is the record of a single keep-alive iteration.
type ProbeResult struct {
	// DriveID identifies the probed drive.
	DriveID DriveID

	// StartedAt is when the iteration began.
	StartedAt time.Time

	// EndedAt is when the iteration finished.
	EndedAt time.Time

	// Outcome is what happened.
	Outcome ProbeOutcome

	// Error holds the failure message when Outcome is ProbeFailed.
	Error string
}

// Duration returns how long the iteration took.
func (r ProbeResult) Duration() time.Duration {
	if r.EndedAt.Before(r.StartedAt) {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}
