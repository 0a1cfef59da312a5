package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/drivecaffeine/internal/core/domain"
)

func record(t *testing.T, s *ProbeStore, drive domain.DriveID, errMsg string) {
	t.Helper()
	require.NoError(t, s.RecordResult(context.Background(), &domain.ProbeResult{
		DriveID: drive,
		Outcome: domain.ProbeWritten,
		Error:   errMsg,
	}))
}

func TestProbeStore_RecordResult_Nil(t *testing.T) {
	err := NewProbeStore().RecordResult(context.Background(), nil)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProbeStore_GetHistory(t *testing.T) {
	store := NewProbeStore()
	record(t, store, "E:\\", "1")
	record(t, store, "F:\\", "2")
	record(t, store, "E:\\", "3")

	history, err := store.GetHistory(context.Background(), "E:\\", 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "3", history[0].Error)
	assert.Equal(t, "1", history[1].Error)

	history, err = store.GetHistory(context.Background(), "", 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "3", history[0].Error)
	assert.Equal(t, "2", history[1].Error)
}

func TestProbeStore_PruneHistory(t *testing.T) {
	store := NewProbeStore()
	for _, e := range []string{"a", "b", "c"} {
		record(t, store, "E:\\", e)
		record(t, store, "F:\\", e)
	}

	require.NoError(t, store.PruneHistory(context.Background(), 2))

	for _, d := range []domain.DriveID{"E:\\", "F:\\"} {
		history, err := store.GetHistory(context.Background(), d, 10)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, "c", history[0].Error)
		assert.Equal(t, "b", history[1].Error)
	}
}
