package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dateseq/dateseq/internal/history"
	"github.com/dateseq/dateseq/internal/ui"
)

var (
	historyListLimit  int
	historyListPipe   bool
	historyListNoPipe bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect past generations",
	Long: `Inspect the log of past generations.

Every successful dsq gen run is recorded in a local SQLite database
unless history is disabled in config.toml. Listings show the newest
runs first.`,
	Args: cobra.NoArgs,
	RunE: runHistoryList,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent generations",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded generations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistoryStore(getConfig())
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}
		defer store.Close()

		deleted, err := store.Clear()
		if err != nil {
			return handleError(ErrDatabaseError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"deleted": deleted}, nil)
			return nil
		}

		noun := "generations"
		if deleted == 1 {
			noun = "generation"
		}
		fmt.Println(ui.Successf("Cleared %d %s", deleted, noun))
		return nil
	},
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	// Handle --pipe/--no-pipe flags
	if historyListPipe {
		t := true
		SetPipeFormat(&t)
	} else if historyListNoPipe {
		f := false
		SetPipeFormat(&f)
	}

	store, err := openHistoryStore(getConfig())
	if err != nil {
		return handleError(ErrDatabaseError, err, "")
	}
	defer store.Close()

	entries, err := store.Recent(historyListLimit)
	if err != nil {
		return handleError(ErrDatabaseError, err, "")
	}

	if isJSONOutput() {
		outputSuccess(map[string]interface{}{"entries": entries}, &Meta{Count: len(entries)})
		return nil
	}

	// Pipe mode for fzf/cut integration
	if ShouldUsePipeFormat() {
		items := make([]PipeableItem, len(entries))
		for i, e := range entries {
			items[i] = PipeableItem{
				Num:     i + 1,
				ID:      strconv.FormatInt(e.ID, 10),
				Content: TruncateContent(fmt.Sprintf("%s .. %s (%d) %s", e.First, e.Last, e.Count, historyParamsSummary(e)), 80),
			}
		}
		WritePipeableList(os.Stdout, items)
		return nil
	}

	if len(entries) == 0 {
		fmt.Println(ui.Info("No generations recorded yet"))
		fmt.Println(ui.Hint("Run 'dsq gen' and check back."))
		return nil
	}

	fmt.Printf("%s %s\n\n", ui.Header("History"), ui.Hint(ui.Count(len(entries), "run", "runs")))

	display := ui.NewDisplayContext()
	tbl := ui.NewResultsTable(display, ui.HistoryLayout)
	rangeWidth := tbl.ContentWidth("range")
	paramsWidth := tbl.ContentWidth("params")
	for i, e := range entries {
		countCell := fmt.Sprintf("%d dates", e.Count)
		if e.Count == 1 {
			countCell = "1 date"
		}
		tbl.AddRow(ui.ResultRow{
			Num: i + 1,
			Cells: []string{
				ui.FormatRowNum(i+1, len(entries)),
				ui.TruncateWithEllipsis(fmt.Sprintf("%s .. %s", e.First, e.Last), rangeWidth),
				countCell,
				formatTimeAgo(e.RunAt),
				ui.TruncateWithEllipsis(historyParamsSummary(e), paramsWidth),
			},
		})
	}
	fmt.Println(tbl.Render())
	return nil
}

// historyParamsSummary renders the flags behind a recorded run, e.g.
// "step 2, window 7d, reverse, fmt %d/%m/%Y".
func historyParamsSummary(e history.Entry) string {
	parts := []string{fmt.Sprintf("step %d", e.Increment)}
	if e.Days != 0 {
		parts = append(parts, fmt.Sprintf("window %dd", e.Days))
	}
	if e.Reverse {
		parts = append(parts, "reverse")
	}
	parts = append(parts, "fmt "+e.OutputFormat)
	return strings.Join(parts, ", ")
}

// formatTimeAgo formats a timestamp as a human-readable "X ago" string.
func formatTimeAgo(t time.Time) string {
	diff := time.Since(t)

	if diff < time.Minute {
		return "just now"
	} else if diff < time.Hour {
		mins := int(diff.Minutes())
		if mins == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", mins)
	} else if diff < 24*time.Hour {
		hours := int(diff.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	}

	days := int(diff.Hours() / 24)
	if days == 1 {
		return "1 day ago"
	}
	return fmt.Sprintf("%d days ago", days)
}

func init() {
	// The bare history command is an alias for history list, so both
	// carry the listing flags, bound to the same variables.
	historyCmd.Flags().IntVarP(&historyListLimit, "limit", "n", 20, "Maximum entries to show")
	historyCmd.Flags().BoolVar(&historyListPipe, "pipe", false, "Force pipe-friendly output format")
	historyCmd.Flags().BoolVar(&historyListNoPipe, "no-pipe", false, "Force human-readable output format")
	historyListCmd.Flags().IntVarP(&historyListLimit, "limit", "n", 20, "Maximum entries to show")
	historyListCmd.Flags().BoolVar(&historyListPipe, "pipe", false, "Force pipe-friendly output format")
	historyListCmd.Flags().BoolVar(&historyListNoPipe, "no-pipe", false, "Force human-readable output format")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}
