// Command drivecaffeine keeps external drives from spinning down.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/drivecaffeine/internal/adapters/driven/config/file"
	"github.com/custodia-labs/drivecaffeine/internal/adapters/driven/drives"
	"github.com/custodia-labs/drivecaffeine/internal/adapters/driven/probe"
	"github.com/custodia-labs/drivecaffeine/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/drivecaffeine/internal/adapters/driving/cli"
	"github.com/custodia-labs/drivecaffeine/internal/core/ports/driven"
	"github.com/custodia-labs/drivecaffeine/internal/core/services"
)

func main() {
	cli.SetBootstrap(bootstrap)

	// cobra already prints the error.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap wires the adapters into the core services.
func bootstrap(opts cli.Options) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	svc := &cli.Services{
		Settings: settingsService,
		Watcher:  configStore,
	}

	var next driven.ProbeRecorder
	if settings.History.Enabled {
		store, err := sqlite.NewStore(opts.DataDir)
		if err != nil {
			return nil, fmt.Errorf("open history: %w", err)
		}
		history := services.NewHistoryService(store.ProbeStore(), settings.History.Keep)
		next = history
		svc.History = history
		svc.Close = store.Close
	}

	recorder := probe.NewLoggingRecorder(next, probe.DefaultRepeatInterval)
	registry := services.NewRegistry(settings.KeepAlive.Interval, probe.NewFSProber(), recorder)

	svc.Registry = registry
	svc.Drives = services.NewDriveService(drives.NewLister(), registry)
	return svc, nil
}
