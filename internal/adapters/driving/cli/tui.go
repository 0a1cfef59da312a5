package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/drivecaffeine/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive drive menu",
	Long: `Launch the interactive menu for drivecaffeine.

The menu lists mounted drives with a checkbox each, the probe interval as
a radio group, and an Exit entry. Choices apply immediately and are saved
as startup preferences.

Controls:
  ↑/k, ↓/j      - Navigate
  Enter, Space  - Toggle drive / pick interval
  h             - Probe history for the selected drive
  r             - Refresh drive list
  ?             - Help
  q, Ctrl+C     - Stop keeping drives awake and exit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	return keepAliveWhile(cmd.Context(), func(ctx context.Context) error {
		ports := &tui.Ports{
			Registry: registry,
			Drives:   driveService,
			History:  historyService,
			Settings: settingsService,
		}

		app, err := tui.NewApp(ports)
		if err != nil {
			return fmt.Errorf("failed to create TUI: %w", err)
		}

		if err := app.WithContext(ctx).Run(); err != nil {
			return fmt.Errorf("TUI error: %w", err)
		}
		return nil
	})
}
