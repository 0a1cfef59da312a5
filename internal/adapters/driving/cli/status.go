package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/drivecaffeine/internal/core/domain"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and mounted drives",
	Long: `Show the configured interval and startup drives, whether each is
mounted, and the last probe recorded for it.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if settingsService == nil || driveService == nil {
		return errNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	drives, err := driveService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list drives: %w", err)
	}

	mounted := make(map[domain.DriveID]domain.Drive, len(drives))
	for _, d := range drives {
		if d.Mounted {
			mounted[d.Drive.ID] = d.Drive
		}
	}

	cmd.Printf("Interval: %s\n", settings.KeepAlive.Interval.Description())
	cmd.Printf("Mounted drives: %d\n", len(mounted))
	cmd.Println()

	if len(settings.KeepAlive.Drives) == 0 {
		cmd.Println("No drives are kept awake at startup.")
		cmd.Println("Add one with: drivecaffeine settings drives add <root>")
		return nil
	}

	cmd.Println("Startup drives:")
	for _, id := range settings.KeepAlive.Drives {
		state := "not mounted"
		if d, ok := mounted[id]; ok {
			state = "mounted"
			if d.Label != "" {
				state = "mounted, " + d.Label
			}
		}
		cmd.Printf("  %s (%s)%s\n", id, state, lastProbe(cmd, id))
	}
	return nil
}

func lastProbe(cmd *cobra.Command, drive domain.DriveID) string {
	if historyService == nil {
		return ""
	}
	r, err := historyService.Last(cmd.Context(), drive)
	if err != nil || r == nil {
		return ""
	}
	return fmt.Sprintf(" last probe %s at %s", r.Outcome, r.StartedAt.Local().Format("15:04:05"))
}
