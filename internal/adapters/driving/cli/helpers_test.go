package cli

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/drivecaffeine/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/drivecaffeine/internal/core/domain"
	"github.com/custodia-labs/drivecaffeine/internal/core/ports/driven"
	"github.com/custodia-labs/drivecaffeine/internal/core/services"
)

// stubProber reports every drive as unreachable so no files are written.
type stubProber struct{}

var _ driven.Prober = stubProber{}

func (stubProber) Reachable(domain.DriveID) bool { return false }
func (stubProber) Probe(domain.DriveID) error    { return nil }

// stubLister implements driven.DriveLister for testing.
type stubLister struct {
	mu     sync.Mutex
	drives []domain.Drive
	err    error
}

var _ driven.DriveLister = (*stubLister)(nil)

func (s *stubLister) List(_ context.Context) ([]domain.Drive, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drives, s.err
}

type testEnv struct {
	config   *memory.ConfigStore
	probes   *memory.ProbeStore
	registry *services.Registry
	settings *services.SettingsService
	history  *services.HistoryService
	lister   *stubLister
}

// setupServices wires real services over in-memory stores and restores
// the package state when the test ends.
func setupServices(t *testing.T, mounted ...domain.Drive) *testEnv {
	t.Helper()

	env := &testEnv{
		config: memory.NewConfigStore(),
		probes: memory.NewProbeStore(),
		lister: &stubLister{drives: mounted},
	}
	env.history = services.NewHistoryService(env.probes, 10)
	env.registry = services.NewRegistry(domain.DefaultInterval, stubProber{}, env.history)
	env.settings = services.NewSettingsService(env.config)

	saved := snapshotServices()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = env.registry.Shutdown(ctx)
		restoreServices(saved)
	})

	bootstrap = nil
	SetServices(&Services{
		Registry: env.registry,
		Drives:   services.NewDriveService(env.lister, env.registry),
		History:  env.history,
		Settings: env.settings,
		Watcher:  env.config,
	})
	return env
}

// clearServices leaves every service unset for the duration of the test.
func clearServices(t *testing.T) {
	t.Helper()
	saved := snapshotServices()
	t.Cleanup(func() { restoreServices(saved) })
	bootstrap = nil
	SetServices(&Services{})
}

type serviceSnapshot struct {
	services  Services
	bootstrap Bootstrap
}

func snapshotServices() serviceSnapshot {
	return serviceSnapshot{
		services: Services{
			Registry: registry,
			Drives:   driveService,
			History:  historyService,
			Settings: settingsService,
			Watcher:  configWatcher,
			Close:    closeServices,
		},
		bootstrap: bootstrap,
	}
}

func restoreServices(s serviceSnapshot) {
	SetServices(&s.services)
	bootstrap = s.bootstrap
}

// executeCommand runs the root command with args and returns its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(new(bytes.Buffer))
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag to its default so earlier executions do
// not leak into later ones.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func newTestCommand(ctx context.Context) (*cobra.Command, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	cmd := &cobra.Command{}
	cmd.SetContext(ctx)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	return cmd, buf
}

func requireActive(t *testing.T, env *testEnv, drives ...domain.DriveID) {
	t.Helper()
	require.Eventually(t, func() bool {
		active := env.registry.ActiveDrives()
		if len(active) != len(drives) {
			return false
		}
		for i := range drives {
			if active[i] != drives[i] {
				return false
			}
		}
		return true
	}, 2*time.Second, 5*time.Millisecond)
}
