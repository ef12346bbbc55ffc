package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Append a trade to the journal",
	Long: `Append one trade to the journal. The balance is computed from the last
journaled balance (or the initial balance) plus the result.

Criteria are given by their column names and may be repeated or comma
separated. Matching ignores case.

Example:
  tradebook add --pair EUR/USD --side buy --time 09:30:00 \
    --trend-1d Bullish --trend-1h Bullish --trend-15m Bearish \
    --criteria "IFC,Liquidation" --criteria "50% mitigation" --result 50`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

var addOpts struct {
	pair     string
	side     string
	time     string
	date     string
	trend1D  string
	trend1H  string
	trend15m string
	criteria []string
	result   float64
	notes    string
}

func init() {
	rootCmd.AddCommand(addCmd)

	f := addCmd.Flags()
	f.StringVarP(&addOpts.pair, "pair", "p", "EUR/USD", "currency pair")
	f.StringVarP(&addOpts.side, "side", "s", "", "buy or sell (required)")
	f.StringVarP(&addOpts.time, "time", "t", "", "entry time HH:MM:SS (default now)")
	f.StringVarP(&addOpts.date, "date", "d", "", "entry date YYYY-MM-DD (sqlite journals only)")
	f.StringVar(&addOpts.trend1D, "trend-1d", "", "1D trend: Bullish or Bearish (required)")
	f.StringVar(&addOpts.trend1H, "trend-1h", "", "1H trend: Bullish or Bearish (required)")
	f.StringVar(&addOpts.trend15m, "trend-15m", "", "15m trend: Bullish or Bearish (required)")
	f.StringSliceVar(&addOpts.criteria, "criteria", nil, "criteria met at entry")
	f.Float64VarP(&addOpts.result, "result", "r", 0, "trade result in account currency (required)")
	f.StringVarP(&addOpts.notes, "notes", "n", "", "free text notes")

	for _, name := range []string{"side", "trend-1d", "trend-1h", "trend-15m", "result"} {
		addCmd.MarkFlagRequired(name)
	}
}

func runAdd(cmd *cobra.Command, args []string) error {
	cs, err := journal.ParseCriteria(addOpts.criteria)
	if err != nil {
		return fmt.Errorf("criteria: %w", err)
	}

	entry := addOpts.time
	if entry == "" {
		entry = time.Now().Format(journal.TimeLayout)
	}

	t := journal.Trade{
		Pair:     addOpts.pair,
		Side:     journal.Side(addOpts.side),
		Time:     entry,
		Date:     addOpts.date,
		Trend1D:  journal.Trend(addOpts.trend1D),
		Trend1H:  journal.Trend(addOpts.trend1H),
		Trend15m: journal.Trend(addOpts.trend15m),
		Criteria: journal.NewCriteriaSet(cs...),
		Result:   addOpts.result,
		Notes:    addOpts.notes,
	}

	svc, _, _, cleanup, err := openService()
	if err != nil {
		return err
	}
	defer cleanup()

	stored, err := svc.AddTrade(t)
	if err != nil {
		return fmt.Errorf("add trade: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ Trade #%d recorded: %s %s %s\n", stored.Seq, stored.Pair, stored.Side, colorResult(stored.Result))
	fmt.Fprintf(out, "  Balance: %.2f\n", stored.Balance)
	return nil
}
