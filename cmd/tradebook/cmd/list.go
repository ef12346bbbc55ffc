package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List journaled trades",
	Long: `Print every trade in the journal as a table, oldest first.

Examples:
  tradebook list
  tradebook list --last 10`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listLast int

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().IntVarP(&listLast, "last", "l", 0, "only show the last N trades")
}

const (
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// colorResult marks a result + (win) or - (loss or flat), in green or red
// unless color is disabled.
func colorResult(r float64) string {
	marker, color := "-", ansiRed
	if r > 0 {
		marker, color = "+", ansiGreen
	}
	s := fmt.Sprintf("%s %.2f", marker, r)
	if noColor {
		return s
	}
	return color + s + ansiReset
}

func runList(cmd *cobra.Command, args []string) error {
	svc, _, _, cleanup, err := openService()
	if err != nil {
		return err
	}
	defer cleanup()

	trades, warnings, err := svc.Trades()
	if err != nil {
		return fmt.Errorf("load journal: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, w := range warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}
	if len(trades) == 0 {
		fmt.Fprintln(out, "No trades have been made yet.")
		return nil
	}

	shown := trades
	if listLast > 0 && listLast < len(trades) {
		shown = trades[len(trades)-listLast:]
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tPAIR\tSIDE\tDATE\tTIME\t1D\t1H\t15M\tCRITERIA\tRESULT\tBALANCE")
	for _, t := range shown {
		date := t.Date
		if date == "" {
			date = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d/%d\t%s\t%.2f\n",
			t.Seq, t.Pair, t.Side, date, t.Time,
			t.Trend1D, t.Trend1H, t.Trend15m,
			t.Criteria.Len(), journal.NumCriteria,
			colorResult(t.Result), t.Balance)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nCurrent Balance: %.2f\n", journal.CurrentBalance(trades, svc.Options().InitialBalance))
	return nil
}
