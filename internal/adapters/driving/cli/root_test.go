package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/drivecaffeine/internal/logger"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "drivecaffeine", rootCmd.Use)
	assert.Contains(t, rootCmd.Long, "probe file")
}

func TestRootCmd_Flags(t *testing.T) {
	for _, name := range []string{"verbose", "config-dir", "data-dir"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"run", "tui", "mcp", "settings", "drives", "history", "status", "version"} {
		assert.True(t, names[want], "missing command %q", want)
	}
}

func TestInitialise_UsesBootstrap(t *testing.T) {
	clearServices(t)
	defer logger.SetVerbose(false)

	var got Options
	SetBootstrap(func(opts Options) (*Services, error) {
		got = opts
		env := &Services{Registry: nil}
		return env, nil
	})

	_, err := executeCommand(t, "--config-dir", "/tmp/cfg", "--data-dir", "/tmp/data", "-v", "version")

	require.NoError(t, err)
	assert.Equal(t, Options{ConfigDir: "/tmp/cfg", DataDir: "/tmp/data", Verbose: true}, got)
	assert.True(t, logger.IsVerbose())
}

func TestInitialise_BootstrapError(t *testing.T) {
	clearServices(t)
	SetBootstrap(func(Options) (*Services, error) {
		return nil, errors.New("open history: disk I/O error")
	})

	_, err := executeCommand(t, "version")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "initialise: open history: disk I/O error")
}

func TestInitialise_SkipsBootstrapWhenWired(t *testing.T) {
	setupServices(t)
	called := false
	SetBootstrap(func(Options) (*Services, error) {
		called = true
		return &Services{}, nil
	})

	_, err := executeCommand(t, "version")

	require.NoError(t, err)
	assert.False(t, called)
}

func TestExecute_ClosesServices(t *testing.T) {
	clearServices(t)
	resetFlags(rootCmd)
	closed := 0
	closeServices = func() error {
		closed++
		return nil
	}
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, Execute())
	assert.Equal(t, 1, closed)
}
