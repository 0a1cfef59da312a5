package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/drivecaffeine/internal/core/services"
	"github.com/custodia-labs/drivecaffeine/internal/logger"
)

// shutdownTimeout bounds how long stopping the registry may take.
const shutdownTimeout = 5 * time.Second

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Keep configured drives awake in the foreground",
	Long: `Keep the drives listed in the config file awake until interrupted.

Edits to the config file are picked up while running: drives added to
keepalive.drives start immediately, removed drives stop, and a new
keepalive.interval applies after each drive's current wait.

Stop with Ctrl+C or SIGTERM.`,
	RunE: runKeepAlive,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runKeepAlive(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return keepAliveWhile(ctx, func(ctx context.Context) error {
		st := registry.Status()
		cmd.Printf("Keeping %d drive(s) awake every %s. Press Ctrl+C to stop.\n",
			len(st.ActiveDrives), st.Interval.Description())

		<-ctx.Done()
		cmd.Println("Stopping...")
		return nil
	})
}

// keepAliveWhile keeps the configured drives awake while fn runs, then
// stops following the config before shutting the registry down.
func keepAliveWhile(parent context.Context, fn func(ctx context.Context) error) (err error) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	if err := startKeepAlive(ctx); err != nil {
		return err
	}
	defer func() {
		cancel()
		if serr := shutdownRegistry(); serr != nil && err == nil {
			err = serr
		}
	}()

	return fn(ctx)
}

// startKeepAlive seeds the registry from the config file and follows
// later edits until ctx is done.
func startKeepAlive(ctx context.Context) error {
	if registry == nil || settingsService == nil {
		return errNotConfigured
	}

	if err := settingsService.Validate(); err != nil {
		logger.Warn("config: %v (using defaults for invalid values)", err)
	}
	if err := applySettings(); err != nil {
		return fmt.Errorf("apply settings: %w", err)
	}

	if configWatcher == nil {
		return nil
	}
	changes, err := configWatcher.Watch(ctx)
	if err != nil {
		logger.Warn("config reload disabled: %v", err)
		return nil
	}
	go followConfig(ctx, changes)
	return nil
}

func applySettings() error {
	settings, err := settingsService.Get()
	if err != nil {
		return err
	}
	return services.Reconcile(registry, settings)
}

// followConfig reconciles the registry after every config change.
func followConfig(ctx context.Context, changes <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-changes:
			if !ok {
				return
			}
			logger.Section("reload")
			if err := settingsService.Validate(); err != nil {
				logger.Warn("config: %v (using defaults for invalid values)", err)
			}
			if err := applySettings(); err != nil {
				logger.Warn("apply settings: %v", err)
				continue
			}
			st := registry.Status()
			logger.Info("config reloaded: %d drive(s), every %s", len(st.ActiveDrives), st.Interval.Description())
		}
	}
}

func shutdownRegistry() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return registry.Shutdown(ctx)
}
