package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
)

var showCmd = &cobra.Command{
	Use:   "show <seq|trade-id>",
	Short: "Show one trade as an Org-mode block",
	Long: `Print a single trade in Org-mode format, ready to paste into a review file.

The trade is picked by its 1-based position in the journal. SQLite journals
also accept the trade's ULID.

Examples:
  tradebook show 3
  tradebook show 01HQ3V4Y6T3S8K9W0X1Y2Z3A4B`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	svc, _, _, cleanup, err := openService()
	if err != nil {
		return err
	}
	defer cleanup()

	var t journal.Trade
	if seq, perr := strconv.Atoi(args[0]); perr == nil {
		t, err = svc.Trade(seq)
	} else if db, ok := svc.Store().(*journal.SQLiteStore); ok {
		t, err = db.GetTrade(args[0])
	} else {
		return fmt.Errorf("%q is not a trade number", args[0])
	}
	if err != nil {
		return fmt.Errorf("get trade: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatTradeOrg(t))
	return nil
}
