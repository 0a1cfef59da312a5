// Package cli provides the cobra command tree for drivecaffeine.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/drivecaffeine/internal/core/ports/driven"
	"github.com/custodia-labs/drivecaffeine/internal/core/ports/driving"
	"github.com/custodia-labs/drivecaffeine/internal/logger"
)

// version is set at build time via -ldflags "-X .../cli.version=<version>".
var version = "dev"

// errNotConfigured is returned by commands run without wired services.
var errNotConfigured = errors.New("services not configured")

// Command-line flags.
var (
	verbose   bool
	configDir string
	dataDir   string
)

// Services wired by the composition root.
var (
	registry        driving.Registry
	driveService    driving.DriveService
	historyService  driving.HistoryService
	settingsService driving.SettingsService
	configWatcher   driven.ConfigWatcher
	closeServices   func() error
)

// Options carries the global flags to the bootstrap function.
type Options struct {
	ConfigDir string
	DataDir   string
	Verbose   bool
}

// Services groups the dependencies the commands need.
type Services struct {
	Registry driving.Registry
	Drives   driving.DriveService
	// History is nil when probe history is disabled.
	History  driving.HistoryService
	Settings driving.SettingsService
	// Watcher reports config file edits. Optional.
	Watcher driven.ConfigWatcher
	// Close releases stores. Optional.
	Close func() error
}

// Bootstrap builds the services once flags are parsed.
type Bootstrap func(opts Options) (*Services, error)

var bootstrap Bootstrap

// SetBootstrap registers the function that builds services.
func SetBootstrap(fn Bootstrap) {
	bootstrap = fn
}

// SetServices installs already-built services.
func SetServices(s *Services) {
	registry = s.Registry
	driveService = s.Drives
	historyService = s.History
	settingsService = s.Settings
	configWatcher = s.Watcher
	closeServices = s.Close
}

var rootCmd = &cobra.Command{
	Use:   "drivecaffeine",
	Short: "Keep external drives from spinning down",
	Long: `drivecaffeine keeps external drives awake by periodically writing and
deleting a tiny probe file in the root of each enabled drive.

Run without arguments in a terminal to open the interactive menu. When
output is not a terminal, drives listed in the config file are kept
awake in the foreground until interrupted.`,
	SilenceUsage:      true,
	PersistentPreRunE: initialise,
	RunE:              runDefault,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.drivecaffeine)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.drivecaffeine/data)")
}

// initialise applies logging flags and builds services on first use.
func initialise(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if registry != nil || bootstrap == nil {
		return nil
	}

	svc, err := bootstrap(Options{
		ConfigDir: configDir,
		DataDir:   dataDir,
		Verbose:   verbose,
	})
	if err != nil {
		return fmt.Errorf("initialise: %w", err)
	}
	SetServices(svc)
	return nil
}

func runDefault(cmd *cobra.Command, args []string) error {
	if term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd())) {
		return runTUI(cmd, args)
	}
	return runKeepAlive(cmd, args)
}

// Execute runs the root command and releases services afterwards.
func Execute() error {
	defer func() {
		if closeServices == nil {
			return
		}
		if err := closeServices(); err != nil {
			logger.Warn("closing services: %v", err)
		}
	}()
	return rootCmd.Execute()
}
