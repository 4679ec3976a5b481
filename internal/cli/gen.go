// Package cli implements the command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dateseq/dateseq/internal/dates"
	"github.com/dateseq/dateseq/internal/history"
	"github.com/dateseq/dateseq/internal/seq"
	"github.com/dateseq/dateseq/internal/ui"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a sequence of dates",
	Long: `Generate a sequence of dates.

Without flags, prints today. Bound the range with --begin-date and
--end-date, or derive the end from --days, which always wins over an
explicit end date. The increment may be negative to count down, and its
sign is reconciled with the endpoints, so a backward range with a
positive increment simply counts down.

Dates are read and written in strftime formats. The relative keywords
today, yesterday, and tomorrow are accepted wherever a date is.

Examples:
  dsq gen                                     # today
  dsq gen -b 2025-01-01 -e 2025-01-10         # ten days, one per line
  dsq gen -b 2025-03-01 -d 7 -s ", "          # a week, comma-separated
  dsq gen -b 2025-12-31 -n -1 -d 5            # count down five days
  dsq gen -b 01/02/2025 -i %d/%m/%Y -d 3      # custom input format
  dsq gen -e tomorrow -r                      # tomorrow, then today`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		started := time.Now()

		separator, _ := cmd.Flags().GetString("separator")
		outputFormat, _ := cmd.Flags().GetString("output-format")
		inputFormat, _ := cmd.Flags().GetString("input-format")
		begin, _ := cmd.Flags().GetString("begin-date")
		end, _ := cmd.Flags().GetString("end-date")
		increment, _ := cmd.Flags().GetInt64("increment")
		days, _ := cmd.Flags().GetInt64("days")
		reverse, _ := cmd.Flags().GetBool("reverse")

		// Config defaults fill in flags the user left untouched.
		if cfg := getConfig(); cfg != nil {
			if !cmd.Flags().Changed("separator") && cfg.Defaults.Separator != "" {
				separator = cfg.Defaults.Separator
			}
			if !cmd.Flags().Changed("output-format") && cfg.Defaults.OutputFormat != "" {
				outputFormat = cfg.Defaults.OutputFormat
			}
			if !cmd.Flags().Changed("input-format") && cfg.Defaults.InputFormat != "" {
				inputFormat = cfg.Defaults.InputFormat
			}
		}

		result, err := seq.Generate(seq.Request{
			Separator:    separator,
			OutputFormat: outputFormat,
			InputFormat:  inputFormat,
			Begin:        begin,
			End:          end,
			Increment:    increment,
			Days:         days,
			Reverse:      reverse,
		})
		if err != nil {
			return handleGenError(err)
		}

		warnings := recordGeneration(result, increment, days, reverse, outputFormat)

		if isJSONOutput() {
			data := map[string]interface{}{
				"dates": result.Dates,
				"first": result.Dates[0],
				"last":  result.Dates[len(result.Dates)-1],
			}
			meta := &Meta{
				Count:     len(result.Dates),
				ElapsedMs: time.Since(started).Milliseconds(),
			}
			if len(warnings) > 0 {
				outputSuccessWithWarnings(data, warnings, meta)
			} else {
				outputSuccess(data, meta)
			}
			return nil
		}

		// Keep stdout clean for piping; warnings go to stderr.
		for _, w := range warnings {
			fmt.Fprintln(os.Stderr, ui.Warning(w.Message))
		}
		fmt.Println(result.Join())
		return nil
	},
}

// handleGenError maps engine errors to stable error codes.
func handleGenError(err error) error {
	var parseErr *seq.ParseError
	switch {
	case errors.As(err, &parseErr):
		return handleErrorWithDetails(ErrDateParseError, err.Error(),
			fmt.Sprintf("Write the date in the %q format or pass --input-format", parseErr.Format),
			map[string]string{"text": parseErr.Text, "format": parseErr.Format})
	case errors.Is(err, seq.ErrInvalidSeparator):
		return handleError(ErrInvalidSeparator, err, "Pass a non-empty --separator, e.g. -s ','")
	case errors.Is(err, seq.ErrInvalidIncrement):
		return handleError(ErrInvalidIncrement, err, "Pass a nonzero --increment")
	case errors.Is(err, seq.ErrIntegerOverflow):
		return handleError(ErrIntegerOverflow, err, "Use a smaller --days window")
	case errors.Is(err, seq.ErrDateOutOfRange):
		return handleError(ErrDateOutOfRange, err, "")
	default:
		return handleError(ErrInternal, err, "")
	}
}

// recordGeneration appends the run to history. Failures never block
// output; they surface as warnings instead.
func recordGeneration(result *seq.Result, increment, days int64, reverse bool, outputFormat string) []Warning {
	if !historyEnabled(getConfig()) {
		return nil
	}

	store, err := openHistoryStore(getConfig())
	if err != nil {
		return []Warning{{Code: WarnHistoryWriteFailed, Message: fmt.Sprintf("failed to open history: %v", err)}}
	}
	defer store.Close()

	if outputFormat == "" {
		outputFormat = dates.DefaultFormat
	}
	entry := history.Entry{
		First:        result.Dates[0],
		Last:         result.Dates[len(result.Dates)-1],
		Count:        int64(len(result.Dates)),
		Increment:    increment,
		Days:         days,
		Reverse:      reverse,
		OutputFormat: outputFormat,
	}
	if err := store.Record(entry); err != nil {
		return []Warning{{Code: WarnHistoryWriteFailed, Message: fmt.Sprintf("failed to record history: %v", err)}}
	}
	return nil
}

func init() {
	genCmd.Flags().StringP("separator", "s", `\n`, "Separator between dates")
	genCmd.Flags().StringP("output-format", "o", "", "strftime format for printed dates (default %Y-%m-%d)")
	genCmd.Flags().StringP("input-format", "i", "", "strftime format for date flags (default %Y-%m-%d)")
	genCmd.Flags().StringP("begin-date", "b", "", "First date in the sequence (default today)")
	genCmd.Flags().StringP("end-date", "e", "", "Last date in the sequence (default today)")
	genCmd.Flags().Int64P("increment", "n", 1, "Step size in days (may be negative)")
	genCmd.Flags().Int64P("days", "d", 0, "Number of days to generate (overrides --end-date)")
	genCmd.Flags().BoolP("reverse", "r", false, "Walk the range backward from the begin date")

	rootCmd.AddCommand(genCmd)
}
