package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeepAliveSettings_HasDrive(t *testing.T) {
	k := KeepAliveSettings{Drives: []DriveID{"/media/a", "/media/b"}}

	assert.True(t, k.HasDrive("/media/b"))
	assert.False(t, k.HasDrive("/media/c"))
}

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, Interval3m, s.KeepAlive.Interval)
	assert.Empty(t, s.KeepAlive.Drives)
	assert.True(t, s.History.Enabled)
	assert.Equal(t, DefaultHistoryKeep, s.History.Keep)
}
