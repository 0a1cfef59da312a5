package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/drivecaffeine/internal/core/domain"
)

var historyCmd = &cobra.Command{
	Use:   "history [root]",
	Short: "Show recent probe results",
	Long: `Show recent keep-alive probe results, newest first. Without a drive
root, results for every drive are shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "maximum number of results")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("probe history is disabled (enable with: drivecaffeine settings history --enabled)")
	}

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return fmt.Errorf("getting limit flag: %w", err)
	}

	var drive domain.DriveID
	if len(args) == 1 {
		drive = domain.NewDriveID(args[0])
	}

	results, err := historyService.Recent(cmd.Context(), drive, limit)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	if len(results) == 0 {
		cmd.Println("No probes recorded.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tDRIVE\tOUTCOME\tDURATION\tERROR")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.DriveID,
			r.Outcome,
			r.Duration().Round(time.Millisecond),
			r.Error,
		)
	}
	return w.Flush()
}
