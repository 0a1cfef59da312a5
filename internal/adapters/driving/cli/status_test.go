package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/drivecaffeine/internal/core/domain"
)

func TestStatusCmd_NoStartupDrives(t *testing.T) {
	setupServices(t, domain.Drive{ID: "/media/usb"})

	out, err := executeCommand(t, "status")

	require.NoError(t, err)
	assert.Contains(t, out, "Interval: 3 minutes")
	assert.Contains(t, out, "Mounted drives: 1")
	assert.Contains(t, out, "No drives are kept awake at startup.")
}

func TestStatusCmd_StartupDrives(t *testing.T) {
	env := setupServices(t, domain.Drive{ID: "/media/usb", Label: "BACKUP"})
	require.NoError(t, env.settings.AddDrive("/media/usb"))
	require.NoError(t, env.settings.AddDrive("/media/gone"))
	recordProbe(t, env, "/media/usb", domain.ProbeWritten, "")

	out, err := executeCommand(t, "status")

	require.NoError(t, err)
	assert.Contains(t, out, "Startup drives:")
	assert.Contains(t, out, "/media/usb (mounted, BACKUP) last probe written at")
	assert.Contains(t, out, "/media/gone (not mounted)\n")
}

func TestStatusCmd_WithoutHistory(t *testing.T) {
	env := setupServices(t, domain.Drive{ID: "/media/usb"})
	require.NoError(t, env.settings.AddDrive("/media/usb"))
	historyService = nil

	out, err := executeCommand(t, "status")

	require.NoError(t, err)
	assert.Contains(t, out, "/media/usb (mounted)\n")
}

func TestStatusCmd_NotConfigured(t *testing.T) {
	clearServices(t)

	_, err := executeCommand(t, "status")

	assert.ErrorIs(t, err, errNotConfigured)
}
