package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var drivesCmd = &cobra.Command{
	Use:   "drives",
	Short: "List mounted drives",
	Long: `List mounted drives with their label and filesystem, marking those
kept awake at startup.`,
	RunE: runDrives,
}

func init() {
	rootCmd.AddCommand(drivesCmd)
}

func runDrives(cmd *cobra.Command, _ []string) error {
	if driveService == nil || settingsService == nil {
		return errNotConfigured
	}

	drives, err := driveService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list drives: %w", err)
	}
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if len(drives) == 0 {
		cmd.Println("No drives found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STARTUP\tROOT\tLABEL\tFS\tREMOVABLE")
	for _, d := range drives {
		mark := " "
		if settings.KeepAlive.HasDrive(d.Drive.ID) {
			mark = "*"
		}
		removable := "no"
		if d.Drive.Removable {
			removable = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", mark, d.Drive.ID, d.Drive.Label, d.Drive.FSType, removable)
	}
	return w.Flush()
}
