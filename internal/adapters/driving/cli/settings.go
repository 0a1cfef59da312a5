package cli

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/drivecaffeine/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage startup settings",
	Long: `View and change the settings stored in the config file: the probe
interval, the drives kept awake at startup and probe history retention.

Running commands pick up changes made here without a restart.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsIntervalCmd = &cobra.Command{
	Use:   "interval [minutes]",
	Short: "Set the probe interval",
	Long: `Set the delay between keep-alive probes for every drive.

Supported values: 1, 3, 5 or 10 minutes. Without an argument, the
intervals are listed and you are asked to pick one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsInterval,
}

var settingsDrivesCmd = &cobra.Command{
	Use:   "drives",
	Short: "Manage drives kept awake at startup",
}

var settingsDrivesAddCmd = &cobra.Command{
	Use:   "add <root>",
	Short: "Keep a drive awake at startup",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsDrivesAdd,
}

var settingsDrivesRemoveCmd = &cobra.Command{
	Use:   "remove <root>",
	Short: "Stop keeping a drive awake at startup",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsDrivesRemove,
}

var settingsHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Configure probe history",
	Long: `Turn probe history recording on or off and set how many results are
kept per drive. Takes effect the next time drivecaffeine starts.`,
	RunE: runSettingsHistory,
}

func init() {
	settingsHistoryCmd.Flags().Bool("enabled", true, "record probe results")
	settingsHistoryCmd.Flags().Int("keep", domain.DefaultHistoryKeep, "results kept per drive")

	settingsDrivesCmd.AddCommand(settingsDrivesAddCmd)
	settingsDrivesCmd.AddCommand(settingsDrivesRemoveCmd)

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsIntervalCmd)
	settingsCmd.AddCommand(settingsDrivesCmd)
	settingsCmd.AddCommand(settingsHistoryCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Keep-alive]")
	cmd.Printf("  Interval: %s\n", settings.KeepAlive.Interval.Description())
	if len(settings.KeepAlive.Drives) == 0 {
		cmd.Println("  Drives: (none)")
	} else {
		cmd.Println("  Drives:")
		for _, d := range settings.KeepAlive.Drives {
			cmd.Printf("    - %s\n", d)
		}
	}
	cmd.Println()

	cmd.Println("[History]")
	if settings.History.Enabled {
		cmd.Println("  Enabled: yes")
		cmd.Printf("  Keep: %d per drive\n", settings.History.Keep)
	} else {
		cmd.Println("  Enabled: no")
	}
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Invalid values fall back to defaults; fix them in the config file.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsInterval(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNotConfigured
	}

	var (
		interval domain.Interval
		err      error
	)
	if len(args) == 1 {
		interval, err = domain.ParseInterval(args[0])
		if err != nil {
			return err
		}
	} else {
		interval, err = promptInterval(cmd)
		if err != nil {
			return err
		}
	}

	if err := settingsService.SetInterval(interval); err != nil {
		return fmt.Errorf("failed to set interval: %w", err)
	}
	cmd.Printf("Probe interval set to %s\n", interval.Description())
	return nil
}

// promptInterval lists the intervals and reads a choice, defaulting to
// the current one.
func promptInterval(cmd *cobra.Command) (domain.Interval, error) {
	settings, err := settingsService.Get()
	if err != nil {
		return "", fmt.Errorf("failed to get settings: %w", err)
	}

	intervals := domain.Intervals()
	current := slices.Index(intervals, settings.KeepAlive.Interval) + 1
	if current == 0 {
		current = slices.Index(intervals, domain.DefaultInterval) + 1
	}

	cmd.Println("Select probe interval")
	for i, iv := range intervals {
		marker := " "
		if i+1 == current {
			marker = "*"
		}
		cmd.Printf(" %s %d. %s\n", marker, i+1, iv.Description())
	}
	cmd.Printf("\nEnter choice [%d]: ", current)

	choice := parseChoice(readLine(bufio.NewReader(cmd.InOrStdin())), len(intervals), current)
	return intervals[choice-1], nil
}

func runSettingsDrivesAdd(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNotConfigured
	}

	drive := domain.NewDriveID(args[0])
	if err := settingsService.AddDrive(drive); err != nil {
		return fmt.Errorf("failed to add drive: %w", err)
	}
	cmd.Printf("%s will be kept awake\n", drive)
	return nil
}

func runSettingsDrivesRemove(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNotConfigured
	}

	drive := domain.NewDriveID(args[0])
	if err := settingsService.RemoveDrive(drive); err != nil {
		return fmt.Errorf("failed to remove drive: %w", err)
	}
	cmd.Printf("%s will no longer be kept awake\n", drive)
	return nil
}

func runSettingsHistory(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	enabled, keep := settings.History.Enabled, settings.History.Keep
	if cmd.Flags().Changed("enabled") {
		enabled, _ = cmd.Flags().GetBool("enabled")
	}
	if cmd.Flags().Changed("keep") {
		keep, _ = cmd.Flags().GetInt("keep")
	}

	if err := settingsService.SetHistory(enabled, keep); err != nil {
		return fmt.Errorf("failed to configure history: %w", err)
	}

	if enabled {
		cmd.Printf("Probe history enabled, keeping %d results per drive\n", keep)
	} else {
		cmd.Println("Probe history disabled")
	}
	return nil
}

func readLine(r *bufio.Reader) string {
	input, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return ""
	}
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}
