package probe

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/drivecaffeine/internal/core/domain"
	"github.com/custodia-labs/drivecaffeine/internal/core/ports/driven"
	"github.com/custodia-labs/drivecaffeine/internal/logger"
)

// mockRecorder implements driven.ProbeRecorder for testing.
type mockRecorder struct {
	mu      sync.Mutex
	results []domain.ProbeResult
	err     error
}

var _ driven.ProbeRecorder = (*mockRecorder)(nil)

func (m *mockRecorder) Record(_ context.Context, result *domain.ProbeResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, *result)
	return m.err
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() {
		logger.SetOutput(os.Stderr)
		logger.SetVerbose(false)
	})
	return &buf
}

func result(outcome domain.ProbeOutcome, errMsg string) *domain.ProbeResult {
	now := time.Now()
	return &domain.ProbeResult{
		DriveID:   "/media/usb",
		StartedAt: now,
		EndedAt:   now,
		Outcome:   outcome,
		Error:     errMsg,
	}
}

func TestLoggingRecorder_Forwards(t *testing.T) {
	captureLogs(t)
	next := &mockRecorder{err: errors.New("store closed")}
	r := NewLoggingRecorder(next, time.Hour)

	err := r.Record(context.Background(), result(domain.ProbeWritten, ""))

	require.EqualError(t, err, "store closed")
	assert.Len(t, next.results, 1)
}

func TestLoggingRecorder_NilNext(t *testing.T) {
	captureLogs(t)
	r := NewLoggingRecorder(nil, 0)

	assert.Equal(t, DefaultRepeatInterval, r.repeat)
	require.NoError(t, r.Record(context.Background(), result(domain.ProbeWritten, "")))
	require.ErrorIs(t, r.Record(context.Background(), nil), domain.ErrInvalidInput)
}

func TestLoggingRecorder_DebugWhenVerbose(t *testing.T) {
	buf := captureLogs(t)
	logger.SetVerbose(true)
	r := NewLoggingRecorder(nil, time.Hour)

	require.NoError(t, r.Record(context.Background(), result(domain.ProbeWritten, "")))

	assert.Contains(t, buf.String(), "level=debug")
	assert.Contains(t, buf.String(), "written")
}

func TestLoggingRecorder_RepeatedFailuresThrottled(t *testing.T) {
	buf := captureLogs(t)
	r := NewLoggingRecorder(nil, time.Hour)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, r.Record(ctx, result(domain.ProbeFailed, "read-only file system")))
	}

	assert.Equal(t, 1, strings.Count(buf.String(), "level=warning"))
	assert.Contains(t, buf.String(), "keep-alive probe failed")
	assert.Contains(t, buf.String(), "drive=/media/usb")
}

func TestLoggingRecorder_RepeatAfterInterval(t *testing.T) {
	buf := captureLogs(t)
	r := NewLoggingRecorder(nil, 10*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, r.Record(ctx, result(domain.ProbeFailed, "io")))
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, r.Record(ctx, result(domain.ProbeFailed, "io")))

	assert.Contains(t, buf.String(), "still failing")
}

func TestLoggingRecorder_Transitions(t *testing.T) {
	buf := captureLogs(t)
	r := NewLoggingRecorder(nil, time.Hour)
	ctx := context.Background()

	// The first result for a drive is not a transition unless it fails.
	require.NoError(t, r.Record(ctx, result(domain.ProbeSkipped, "")))
	assert.Empty(t, buf.String())

	require.NoError(t, r.Record(ctx, result(domain.ProbeWritten, "")))
	require.NoError(t, r.Record(ctx, result(domain.ProbeSkipped, "")))

	assert.Contains(t, buf.String(), "drive not reachable")
	assert.Equal(t, 1, strings.Count(buf.String(), "level=warning"))
}
